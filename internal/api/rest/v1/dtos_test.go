//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriggerCrawlRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   TriggerCrawlRequest
		shouldErr bool
	}{
		{"Empty keyword list (valid)", TriggerCrawlRequest{}, false},
		{"Single keyword", TriggerCrawlRequest{Keywords: []string{"Survey"}}, false},
		{"Multiple keywords", TriggerCrawlRequest{Keywords: []string{"Survey", "Change Detection"}}, false},
		{"Empty keyword name", TriggerCrawlRequest{Keywords: []string{""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestNewPaperResponse(t *testing.T) {
	paper := testPaper("2108.00001")

	response := NewPaperResponse(paper)

	require.Equal(t, "2108.00001v1", response.ID)
	require.Equal(t, "2108.00001", response.Key)
	require.Equal(t, paper.Authors, response.Authors)
	require.Equal(t, "#", response.RepoURL)
}

func TestNewCrawlRunResponse(t *testing.T) {
	run := testCrawlRun("succeeded")

	response := NewCrawlRunResponse(run)

	require.Equal(t, run.ID, response.ID)
	require.Equal(t, "succeeded", response.Status)
	require.NotNil(t, response.FinishedAt)
	require.Equal(t, 3, response.PaperCount)
}
