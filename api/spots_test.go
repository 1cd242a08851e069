package api_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
)

func TestCreateSpotAppliesOwnerAndDefaults(t *testing.T) {
	srv, _, cleanup := setupServer(t, nil)
	defer cleanup()

	payload := map[string]any{
		"name":             "Rincon",
		"latitude":         34.3487,
		"longitude":        -119.5237,
		"breakType":        "point",
		"skillRequirement": "advanced",
		"description":      "Queen of the coast",
	}
	res := postJSON(t, srv.URL+"/api/surf-spots", payload)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}
	body := decodeBody(t, res)

	if body["name"] != "Rincon" {
		t.Fatalf("expected name Rincon got %v", body["name"])
	}
	if body["break_type"] != "point" {
		t.Fatalf("expected break_type point got %v", body["break_type"])
	}
	if body["is_active"] != true {
		t.Fatalf("expected new spot active, got %v", body["is_active"])
	}
	if int64(body["user_id"].(float64)) != 1 {
		t.Fatalf("expected owner 1 got %v", body["user_id"])
	}
	if int64(body["total_sessions"].(float64)) != 0 {
		t.Fatalf("expected zero sessions on new spot got %v", body["total_sessions"])
	}
}

func TestCreateSpotBlankTypesFallBack(t *testing.T) {
	srv, _, cleanup := setupServer(t, nil)
	defer cleanup()

	res := postJSON(t, srv.URL+"/api/surf-spots", map[string]any{
		"name":      "Secret Cove",
		"latitude":  33.0,
		"longitude": -117.5,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}
	body := decodeBody(t, res)
	if body["break_type"] != "beach" {
		t.Fatalf("expected default break_type beach got %v", body["break_type"])
	}
	if body["skill_requirement"] != "beginner" {
		t.Fatalf("expected default skill beginner got %v", body["skill_requirement"])
	}
}

func TestListSpotsIncludesSeeded(t *testing.T) {
	srv, _, cleanup := setupServer(t, nil)
	defer cleanup()

	res, err := http.Get(srv.URL + "/api/surf-spots")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var spots []map[string]any
	if err := json.NewDecoder(res.Body).Decode(&spots); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(spots) < 3 {
		t.Fatalf("expected at least 3 seeded spots, got %d", len(spots))
	}
	names := map[string]bool{}
	for _, s := range spots {
		names[s["name"].(string)] = true
	}
	if !names["Malibu Beach"] || !names["Venice Beach"] || !names["Manhattan Beach"] {
		t.Fatalf("missing seeded spots in %v", names)
	}
}

func TestGetSpotNotFound(t *testing.T) {
	srv, _, cleanup := setupServer(t, nil)
	defer cleanup()

	res, err := http.Get(srv.URL + "/api/surf-spots/99999")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
	body := decodeBody(t, res)
	if body["error"] != "Surf spot not found" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestUpdateSpotMergesFields(t *testing.T) {
	srv, _, cleanup := setupServer(t, nil)
	defer cleanup()

	created := decodeBody(t, postJSON(t, srv.URL+"/api/surf-spots", map[string]any{
		"name":      "Old Name",
		"latitude":  34.0,
		"longitude": -118.0,
	}))
	id := int64(created["id"].(float64))

	res := doJSON(t, http.MethodPut, srv.URL+"/api/surf-spots/"+itoa(id), map[string]any{
		"name":        "New Name",
		"description": "updated",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	body := decodeBody(t, res)
	if body["name"] != "New Name" {
		t.Fatalf("expected renamed spot got %v", body["name"])
	}
	// untouched fields survive the merge
	if body["latitude"].(float64) != 34.0 {
		t.Fatalf("expected latitude preserved got %v", body["latitude"])
	}
}

func TestDeleteSpotIsSoft(t *testing.T) {
	srv, _, cleanup := setupServer(t, nil)
	defer cleanup()

	created := decodeBody(t, postJSON(t, srv.URL+"/api/surf-spots", map[string]any{
		"name":      "Doomed",
		"latitude":  34.0,
		"longitude": -118.0,
	}))
	id := int64(created["id"].(float64))

	res := doJSON(t, http.MethodDelete, srv.URL+"/api/surf-spots/"+itoa(id), nil)
	res.Body.Close()
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", res.StatusCode)
	}

	// reads now answer 404
	res2, err := http.Get(srv.URL + "/api/surf-spots/" + itoa(id))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete got %d", res2.StatusCode)
	}

	// and the list no longer carries the row
	res3, err := http.Get(srv.URL + "/api/surf-spots")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer res3.Body.Close()
	var spots []map[string]any
	if err := json.NewDecoder(res3.Body).Decode(&spots); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, s := range spots {
		if s["name"] == "Doomed" {
			t.Fatalf("deactivated spot still listed")
		}
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
