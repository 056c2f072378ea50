package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := setupRoutes()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestPostFormat(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"value":{"cartesian":{"real":2,"imag":3}},"decimals":0}`, "4∠56°"},
		{`{"value":{"cartesian":{"real":2,"imag":3}},"decimals":1}`, "3.6∠56.3°"},
		{`{"value":{"polar":{"magnitude":10,"angle":180}},"decimals":0}`, "10∠180°"},
		{`{"value":{"polar":{"magnitude":10,"angle":3.14,"unit":"rad"}},"decimals":0}`, "10∠180°"},
	}

	for _, c := range cases {
		w := doRequest(t, "POST", "/format", c.body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d: %s", c.body, w.Code, w.Body.String())
		}

		var got string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
		}
		if got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestPostFormatInvalidUnit(t *testing.T) {
	w := doRequest(t, "POST", "/format",
		`{"value":{"polar":{"magnitude":1,"angle":1,"unit":"foo"}},"decimals":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPostFormatNoValue(t *testing.T) {
	w := doRequest(t, "POST", "/format", `{"decimals":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPostFormatNegativeDecimals(t *testing.T) {
	w := doRequest(t, "POST", "/format",
		`{"value":{"cartesian":{"real":1,"imag":1}},"decimals":-1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPostConstruct(t *testing.T) {
	w := doRequest(t, "POST", "/construct", `{"polar":{"magnitude":10,"angle":180}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Real         float64 `json:"real"`
		Imag         float64 `json:"imag"`
		Magnitude    float64 `json:"magnitude"`
		AngleDegrees float64 `json:"angleDegrees"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if math.Abs(resp.Real+10) > 1e-9 || math.Abs(resp.Imag) > 1e-9 {
		t.Fatalf("expected -10+0i, got %v%+vi", resp.Real, resp.Imag)
	}
	if math.Abs(resp.Magnitude-10) > 1e-9 {
		t.Fatalf("expected magnitude 10, got %v", resp.Magnitude)
	}
	if math.Abs(resp.AngleDegrees-180) > 1e-6 {
		t.Fatalf("expected angle 180, got %v", resp.AngleDegrees)
	}
}

func TestGetVersion(t *testing.T) {
	w := doRequest(t, "GET", "/version", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
