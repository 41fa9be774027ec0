package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/easyjobs/resume-summary-api/internal/models"
)

func testInput() models.SummaryInput {
	return models.SummaryInput{
		CurrentJobTitle: "Engineer",
		JobDescription:  "Backend",
		YearsExperience: "5",
		Achievements:    "Shipped things",
		TechnicalSkills: "Go",
		Education:       "BSc",
	}
}

func TestSummaryAPIFacade_GenerateSummaries(t *testing.T) {
	tests := []struct {
		name     string
		response string
		status   int
		want     []string
		wantErr  bool
	}{
		{
			name:     "summaries array shape",
			response: `{"summaries":["One.","Two.","Three."]}`,
			status:   http.StatusOK,
			want:     []string{"One.", "Two.", "Three."},
		},
		{
			name:     "data object shape",
			response: `{"data":{"v1":"One.","v2":"Two.","v3":"Three."}}`,
			status:   http.StatusOK,
			want:     []string{"One.", "Two.", "Three."},
		},
		{
			name:     "data array shape",
			response: `{"data":["One.","Two.","Three."]}`,
			status:   http.StatusOK,
			want:     []string{"One.", "Two.", "Three."},
		},
		{
			name:     "bare array shape",
			response: `["One.","Two.","Three."]`,
			status:   http.StatusOK,
			want:     []string{"One.", "Two.", "Three."},
		},
		{
			name:     "blank entries skipped",
			response: `{"summaries":["", "One.","  ","Two.","Three.","Four."]}`,
			status:   http.StatusOK,
			want:     []string{"One.", "Two.", "Three."},
		},
		{
			name:     "too few usable variants",
			response: `{"summaries":["One.","Two."]}`,
			status:   http.StatusOK,
			wantErr:  true,
		},
		{
			name:     "unrecognized shape",
			response: `{"result":"ok"}`,
			status:   http.StatusOK,
			wantErr:  true,
		},
		{
			name:     "non-200 status",
			response: `{"error":"rate limited"}`,
			status:   http.StatusTooManyRequests,
			wantErr:  true,
		},
		{
			name:     "server error",
			response: `oops`,
			status:   http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "Bearer test_key", r.Header.Get("Authorization"))

				var input models.SummaryInput
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))
				assert.Equal(t, "Engineer", input.CurrentJobTitle)

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			facade := NewSummaryAPIFacade(server.URL, "test_key", 5*time.Second)

			got, err := facade.GenerateSummaries(context.Background(), testInput())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSummaryAPIFacade_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"summaries":["One.","Two.","Three."]}`))
	}))
	defer server.Close()

	facade := NewSummaryAPIFacade(server.URL, "", 50*time.Millisecond)

	_, err := facade.GenerateSummaries(context.Background(), testInput())
	assert.Error(t, err)
}

func TestSummaryAPIFacade_NoAPIKeyOmitsAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"summaries":["One.","Two.","Three."]}`))
	}))
	defer server.Close()

	facade := NewSummaryAPIFacade(server.URL, "", 5*time.Second)

	got, err := facade.GenerateSummaries(context.Background(), testInput())
	assert.NoError(t, err)
	assert.Len(t, got, 3)
}
