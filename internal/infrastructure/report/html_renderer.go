package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"arxiv_daily_service/internal/domain/reports"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/logger"
)

type htmlRenderer struct {
	settings *config.ReportSettings
	template *template.Template
	logger   logger.Logger
	now      func() time.Time
}

// NewHTMLRenderer creates a Renderer producing the Bootstrap report page at
// the configured HTML path.
func NewHTMLRenderer(settings *config.ReportSettings, logger logger.Logger) (reports.Renderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report settings: %w", err)
	}

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	return &htmlRenderer{
		settings: settings,
		template: tmpl,
		logger:   logger,
		now:      time.Now,
	}, nil
}

type paperView struct {
	Key       string
	AnchorKey string
	Title     string
	Published string
	Authors   string
	Abstract  string
	PaperURL  string
	RepoURL   string
	HasRepo   bool
}

type topicView struct {
	Name    string
	Visible bool
	Papers  []paperView
}

type pageView struct {
	Title     string
	UpdatedOn string
	Topics    []topicView
}

func (r *htmlRenderer) Render(snapshot reports.Snapshot) error {
	page := pageView{
		Title:     r.settings.Title,
		UpdatedOn: r.now().Format("2006.01.02"),
	}

	// Topics are sorted for a deterministic page layout.
	keywords := make([]string, 0, len(snapshot))
	for keyword := range snapshot {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	for i, keyword := range keywords {
		topic := topicView{
			Name:    keyword,
			Visible: i == 0,
		}

		records := make([]reports.Record, 0, len(snapshot[keyword]))
		for _, record := range snapshot[keyword] {
			records = append(records, record)
		}

		// Newest publications first; key as tie-break for determinism.
		sort.Slice(records, func(a, b int) bool {
			if records[a].PublishTime != records[b].PublishTime {
				return records[a].PublishTime > records[b].PublishTime
			}
			return records[a].PaperKey > records[b].PaperKey
		})

		for _, record := range records {
			topic.Papers = append(topic.Papers, paperView{
				Key:       record.PaperKey,
				AnchorKey: anchorKey(record.PaperKey),
				Title:     record.PaperTitle,
				Published: record.PublishTime,
				Authors:   strings.Join(record.PaperAuthors, ", "),
				Abstract:  record.PaperAbstract,
				PaperURL:  record.PaperURL,
				RepoURL:   record.RepoURL,
				HasRepo:   record.HasRepo(),
			})
		}

		page.Topics = append(page.Topics, topic)
	}

	var buf bytes.Buffer
	if err := r.template.Execute(&buf, page); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := writeFileAtomic(r.settings.HTMLPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report %s: %w", r.settings.HTMLPath, err)
	}

	r.logger.Info("HTML report generated at ", r.settings.HTMLPath)
	return nil
}

// anchorKey turns a paper key into a value usable inside an HTML element id.
func anchorKey(key string) string {
	key = strings.ReplaceAll(key, ".", "-")
	return strings.ReplaceAll(key, "/", "-")
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <!-- Bootstrap CSS -->
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <!-- Font Awesome -->
    <link href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.0.0/css/all.min.css" rel="stylesheet">
    <style>
        .topic-content {
            padding-top: 20px;
        }
        .navbar {
            box-shadow: 0 2px 10px rgba(0, 0, 0, 0.1);
        }
        .paper-actions {
            margin-top: 10px;
        }
    </style>
</head>
<body>
    <nav class="navbar navbar-expand-lg navbar-dark bg-primary sticky-top">
        <div class="container">
            <a class="navbar-brand" href="#">{{.Title}}</a>
            <button class="navbar-toggler" type="button" data-bs-toggle="collapse" data-bs-target="#navbarContent">
                <span class="navbar-toggler-icon"></span>
            </button>
            <div class="collapse navbar-collapse" id="navbarContent">
                <div class="d-flex align-items-center ms-auto">
                    <div class="dropdown me-3">
                        <button class="btn btn-outline-light dropdown-toggle" type="button"
                                id="topicDropdown" data-bs-toggle="dropdown" aria-expanded="false">
                            Select Topic
                        </button>
                        <ul class="dropdown-menu" aria-labelledby="topicDropdown">
{{- range $i, $topic := .Topics}}
                            <li><a class="dropdown-item{{if $topic.Visible}} active{{end}}" href="#" onclick="showTopic('{{$topic.Name}}')">{{$topic.Name}}</a></li>
{{- end}}
                        </ul>
                    </div>
                    <span class="navbar-text">
                        Updated on {{.UpdatedOn}}
                    </span>
                </div>
            </div>
        </div>
    </nav>

{{- range .Topics}}
    <div id="{{.Name}}" class="topic-content container mt-4" {{if not .Visible}}style="display: none;"{{end}}>
        <h2 class="mb-4">{{.Name}}</h2>
{{- range .Papers}}
        <div class="card mb-3">
            <div class="card-body">
                <h5 class="card-title">{{.Title}}</h5>
                <div class="d-flex flex-wrap gap-2 mb-2 text-muted">
                    <small>{{.Published}}</small>
                    <small><i>{{.Authors}}</i></small>
                </div>

                <button class="btn btn-sm btn-outline-primary mb-2"
                        type="button"
                        data-bs-toggle="collapse"
                        data-bs-target="#abstract-{{.AnchorKey}}">
                    <i class="fas fa-align-left"></i> Show Abstract
                </button>

                <div class="collapse" id="abstract-{{.AnchorKey}}">
                    <div class="card card-body bg-light mb-2">
                        {{.Abstract}}
                    </div>
                </div>

                <div class="paper-actions">
                    <a href="{{.PaperURL}}" class="btn btn-sm btn-primary" target="_blank">
                        <i class="fas fa-file-alt"></i> arXiv
                    </a>
{{- if .HasRepo}}
                    <a href="{{.RepoURL}}" class="btn btn-sm btn-success ms-2" target="_blank">
                        <i class="fas fa-code"></i> Code
                    </a>
{{- end}}
                </div>
            </div>
        </div>
{{- end}}
    </div>
{{- end}}

    <!-- Bootstrap JS Bundle with Popper -->
    <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/js/bootstrap.bundle.min.js"></script>

    <script>
        // Show selected topic and hide others
        function showTopic(topicName) {
            document.querySelectorAll('.topic-content').forEach(content => {
                content.style.display = 'none';
            });

            document.getElementById(topicName).style.display = '';

            document.getElementById('topicDropdown').textContent = topicName;

            window.scrollTo(0, 0);
        }
    </script>
</body>
</html>
`
