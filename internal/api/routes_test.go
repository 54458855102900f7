package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolbook/internal/api"
	"schoolbook/internal/record"
)

type stubSessions struct {
	url string
	err error
}

func (s *stubSessions) CreatePayableSession(ctx context.Context) (string, error) {
	return s.url, s.err
}

func newTestServer(t *testing.T, sessions *stubSessions) (*httptest.Server, *record.MemStore) {
	t.Helper()
	store := record.NewMemStore()
	router := api.NewRouter(api.Deps{
		Records:        record.NewService(store),
		Sessions:       sessions,
		AllowedOrigins: []string{"*"},
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, store
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func studentBody(roll int64) map[string]any {
	return map[string]any{
		"firstName":          "Asha",
		"surname":            "Patel",
		"dob":                "2010-04-12",
		"standard":           5,
		"rollNumber":         roll,
		"registrationNumber": roll + 1000,
		"subjects":           []string{"maths", "science"},
	}
}

func TestStudentEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, &stubSessions{})

	t.Run("create returns 201 with the new record", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/students", studentBody(11))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body["success"])

		data := body["data"].(map[string]any)
		assert.Equal(t, float64(11), data["rollNumber"])
		assert.Equal(t, "1011", data["registrationNumber"])
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		invalid := studentBody(12)
		delete(invalid, "subjects")
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/students", invalid)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "all fields are required", body["message"])
	})

	t.Run("duplicate roll number returns 400", func(t *testing.T) {
		dup := studentBody(11)
		dup["registrationNumber"] = 9999
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/students", dup)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "roll number already exists", body["message"])
	})

	t.Run("list returns the enrolled records", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/students", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body["data"].([]any), 1)
	})

	t.Run("delete then delete again returns 404", func(t *testing.T) {
		_, listBody := doJSON(t, http.MethodGet, srv.URL+"/students", nil)
		id := listBody["data"].([]any)[0].(map[string]any)["id"].(string)

		resp, body := doJSON(t, http.MethodDelete, srv.URL+"/students/"+id, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "student deleted successfully", body["message"])

		resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/students/"+id, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestMarksEndpoints(t *testing.T) {
	srv, store := newTestServer(t, &stubSessions{})

	_, created := doJSON(t, http.MethodPost, srv.URL+"/students", studentBody(11))
	id := created["data"].(map[string]any)["id"].(string)

	t.Run("batch without a marks array returns 400", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/entermarks", map[string]any{"other": 1})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid marks format", body["message"])
	})

	t.Run("valid batch returns 200 and persists the later score", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/entermarks", map[string]any{
			"marks": []map[string]any{
				{"studentId": id, "subject": "maths", "score": 70},
				{"studentId": id, "subject": "maths", "score": "85"},
			},
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "marks updated successfully", body["message"])

		student, err := store.FindByID(context.Background(), id)
		require.NoError(t, err)
		require.Len(t, student.Marks, 1)
		assert.Equal(t, 85.0, student.Marks[0].Score)
	})

	t.Run("list marks returns the full records", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/entermarks", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body["data"].([]any), 1)
	})
}

func TestAttendanceEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &stubSessions{})
	doJSON(t, http.MethodPost, srv.URL+"/students", studentBody(11))

	t.Run("valid entry returns 201 with the updated record", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/enterattendance", map[string]any{
			"rollNumber": 11, "subject": "maths", "date": "2025-03-01", "status": "present",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Len(t, data["attendance"].([]any), 1)
	})

	t.Run("unknown roll number returns 404", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/enterattendance", map[string]any{
			"rollNumber": 99, "subject": "maths", "date": "2025-03-01", "status": "present",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid status returns 400", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/enterattendance", map[string]any{
			"rollNumber": 11, "subject": "maths", "date": "2025-03-01", "status": "late",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHomeworkEndpoints(t *testing.T) {
	srv, store := newTestServer(t, &stubSessions{})

	t.Run("homework for an unmatched standard creates a placeholder", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/addhomework", map[string]any{
			"standard": 7, "subject": "history", "date": "2025-03-01", "question": "essay",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "homework added successfully", body["message"])

		count, _ := store.Count(context.Background())
		assert.Equal(t, int64(1), count)
	})

	t.Run("all homework is flattened", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/allhomework", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		homework := body["data"].([]any)
		require.Len(t, homework, 1)
		assert.Equal(t, "essay", homework[0].(map[string]any)["question"])
	})
}

func TestBroadcastEndpoints(t *testing.T) {
	exam := map[string]any{
		"examName": "midterm", "subject": "maths", "date": "2025-06-01",
		"time": "09:00", "totalMarks": 100, "standard": 5,
	}
	salary := map[string]any{
		"teacherName": "R. Iyer", "subject": "maths", "standard": 5,
		"amount": 50000, "bonus": 2500,
	}

	t.Run("exam broadcast on an empty store returns 404", func(t *testing.T) {
		srv, _ := newTestServer(t, &stubSessions{})
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/addexam", exam)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "no students found in the database", body["message"])
	})

	t.Run("salary broadcast on an empty store succeeds", func(t *testing.T) {
		srv, _ := newTestServer(t, &stubSessions{})
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/techersalary", salary)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("broadcasts reach every record", func(t *testing.T) {
		srv, _ := newTestServer(t, &stubSessions{})
		doJSON(t, http.MethodPost, srv.URL+"/students", studentBody(1))
		doJSON(t, http.MethodPost, srv.URL+"/students", studentBody(2))

		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/addexam", exam)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodPost, srv.URL+"/addtecher", map[string]any{
			"teacherName": "R. Iyer", "standard": 5, "subject": "maths",
			"joinDate": "2024-06-01", "email": "iyer@example.com", "phone": "555-0101",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		_, examsBody := doJSON(t, http.MethodGet, srv.URL+"/getallexams", nil)
		assert.Len(t, examsBody["data"].([]any), 2)

		_, teachersBody := doJSON(t, http.MethodGet, srv.URL+"/getalltecher", nil)
		lists := teachersBody["data"].([]any)
		require.Len(t, lists, 2)
		for _, l := range lists {
			assert.Len(t, l.(map[string]any)["teachers"].([]any), 1)
		}

		resp, _ = doJSON(t, http.MethodPost, srv.URL+"/techersalary", salary)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		_, salariesBody := doJSON(t, http.MethodGet, srv.URL+"/getalltechersalary", nil)
		assert.Len(t, salariesBody["data"].([]any), 2)
	})
}

func TestBillingEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, &stubSessions{})
	doJSON(t, http.MethodPost, srv.URL+"/students", studentBody(11))

	bill := map[string]any{
		"billName": "term-fee", "standard": 5, "billedRoll": 11, "amount": 1200,
	}

	t.Run("first bill returns 201", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/addbilling", bill)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Len(t, data["billing"].([]any), 1)
	})

	t.Run("duplicate bill name returns 400", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/addbilling", bill)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "billing already exists for this student", body["message"])
	})

	t.Run("billing lists are per record", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/getallbilling", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		lists := body["data"].([]any)
		require.Len(t, lists, 1)
		assert.Len(t, lists[0].(map[string]any)["billing"].([]any), 1)
	})
}

func TestPaymentSessionEndpoint(t *testing.T) {
	t.Run("returns the checkout url", func(t *testing.T) {
		srv, _ := newTestServer(t, &stubSessions{url: "https://checkout.example/session/abc"})
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/billing", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]any)
		assert.Equal(t, "https://checkout.example/session/abc", data["url"])
	})

	t.Run("gateway failure returns 500", func(t *testing.T) {
		srv, _ := newTestServer(t, &stubSessions{err: errors.New("stripe unavailable")})
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/billing", nil)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "payment creation failed", body["message"])
	})
}

func TestRootAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t, &stubSessions{})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	assert.Equal(t, http.StatusOK, metrics.StatusCode)
}
