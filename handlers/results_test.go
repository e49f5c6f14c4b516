// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/fake-survey-generator/models"
	"github.com/danielhkuo/fake-survey-generator/survey"
	"github.com/danielhkuo/fake-survey-generator/testutil"
)

func TestGetPreview(t *testing.T) {
	st := newTestStore(t)
	handler := NewResultsHandler(st)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return created.Add(3 * time.Hour) }

	decided := survey.Restore("decided", "Tabs or spaces?", 12000, "Developers", created, []survey.Option{
		{Text: "Tabs", Votes: 2000},
		{Text: "Spaces", Votes: 10000},
	})
	pending := survey.Restore("pending", "Vim or Emacs?", 5, "Sysadmins", created, []survey.Option{
		{Text: "Vim"},
	})
	for _, s := range []*survey.Survey{decided, pending} {
		if err := st.Save(context.Background(), s); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expected       models.SurveyPreviewResponse
	}{
		{
			name:           "calculated survey",
			id:             "decided",
			expectedStatus: http.StatusOK,
			expected: models.SurveyPreviewResponse{
				Topic:       "Tabs or spaces?",
				Respondents: "12,000 Developers",
				OptionCount: 2,
				Leader:      "Spaces",
				LeaderVotes: "10,000 votes",
				Age:         "3 hours ago",
			},
		},
		{
			name:           "no votes yet",
			id:             "pending",
			expectedStatus: http.StatusOK,
			expected: models.SurveyPreviewResponse{
				Topic:       "Vim or Emacs?",
				Respondents: "5 Sysadmins",
				OptionCount: 1,
				Age:         "3 hours ago",
			},
		},
		{name: "unknown survey", id: "missing", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.WithURLParams(
				testutil.MakeRequest("GET", "/surveys/"+tt.id+"/preview", nil, nil),
				map[string]string{"id": tt.id},
			)
			w := httptest.NewRecorder()
			handler.GetPreview(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if w.Code == http.StatusOK {
				var resp models.SurveyPreviewResponse
				testutil.AssertJSON(t, w, &resp)
				if resp != tt.expected {
					t.Errorf("Expected %+v, got %+v", tt.expected, resp)
				}
			}
		})
	}
}

func TestGetEvents(t *testing.T) {
	st := newTestStore(t)
	handler := NewResultsHandler(st)

	s := saveSurvey(t, st, 10, "Tabs", "Spaces")

	t.Run("lists outbox rows in order", func(t *testing.T) {
		req := testutil.WithURLParams(
			testutil.MakeRequest("GET", "/surveys/"+s.ID()+"/events", nil, nil),
			map[string]string{"id": s.ID()},
		)
		w := httptest.NewRecorder()
		handler.GetEvents(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SurveyEventsResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.SurveyID != s.ID() {
			t.Errorf("Expected survey_id %s, got %s", s.ID(), resp.SurveyID)
		}
		want := []string{survey.EventCreated, survey.EventOptionAdded, survey.EventOptionAdded}
		if len(resp.Events) != len(want) {
			t.Fatalf("Expected %d events, got %d", len(want), len(resp.Events))
		}
		for i, e := range resp.Events {
			if e.Type != want[i] {
				t.Errorf("Event %d: expected %s, got %s", i, want[i], e.Type)
			}
			if len(e.Payload) == 0 {
				t.Errorf("Event %d has empty payload", i)
			}
		}
	})

	t.Run("unknown survey", func(t *testing.T) {
		req := testutil.WithURLParams(
			testutil.MakeRequest("GET", "/surveys/missing/events", nil, nil),
			map[string]string{"id": "missing"},
		)
		w := httptest.NewRecorder()
		handler.GetEvents(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
