package v1

// BasePath is the common route prefix of API version 1.
const BasePath = "/api/v1/ads"
