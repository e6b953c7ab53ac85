package handlers_test

import (
	"testing"
	"time"

	"scholarhub/internal/adapters/persistence/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	octDeadline := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	novDeadline := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)

	seedScheme(t, db, models.Scheme{SchemeName: "National Merit", ScholarshipName: "National Merit Scholarship", Amount: 50000, AcademicYear: "2026-27", Type: "merit", Category: "general", Deadline: &octDeadline})
	seedScheme(t, db, models.Scheme{SchemeName: "Post-Matric", ScholarshipName: "Post-Matric Scholarship", Amount: 30000, AcademicYear: "2026-27", Type: "means", Category: "sc-st", Deadline: &novDeadline})
	seedScheme(t, db, models.Scheme{SchemeName: "Global Research Fellowship", ScholarshipName: "Global Research Fellowship", Amount: 120000, AcademicYear: "2025-26", Type: "research", Category: "general", International: true})
}

func listSchemes(t *testing.T, app *fiber.App, path string) []interface{} {
	t.Helper()

	resp, body := doJSON(t, app, "GET", path, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("GET %s: expected status 200, got %d (%v)", path, resp.StatusCode, body)
	}
	schemes, ok := body["schemes"].([]interface{})
	if !ok {
		t.Fatalf("GET %s: expected a schemes array, got %v", path, body)
	}
	return schemes
}

func schemeNames(schemes []interface{}) []string {
	names := make([]string, 0, len(schemes))
	for _, raw := range schemes {
		scheme := raw.(map[string]interface{})
		names = append(names, scheme["scheme_name"].(string))
	}
	return names
}

func TestListSchemesEndpoint(t *testing.T) {
	app, db := setupTestApp(t)
	seedCatalog(t, db)

	schemes := listSchemes(t, app, "/api/schemes")
	if len(schemes) != 3 {
		t.Fatalf("Expected 3 schemes, got %d", len(schemes))
	}

	// Deadline order, undated last.
	names := schemeNames(schemes)
	expected := []string{"National Merit", "Post-Matric", "Global Research Fellowship"}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Position %d: expected %q, got %q", i, name, names[i])
		}
	}
}

func TestListSchemesEndpointFilters(t *testing.T) {
	app, db := setupTestApp(t)
	seedCatalog(t, db)

	// Filters across dimensions intersect.
	schemes := listSchemes(t, app, "/api/schemes?academic_year=2026-27&type=merit")
	if len(schemes) != 1 || schemeNames(schemes)[0] != "National Merit" {
		t.Errorf("Expected only National Merit, got %v", schemeNames(schemes))
	}

	schemes = listSchemes(t, app, "/api/schemes?academic_year=2026-27&type=research")
	if len(schemes) != 0 {
		t.Errorf("Expected no match for conflicting filters, got %v", schemeNames(schemes))
	}

	// Multiple categories match any of them.
	schemes = listSchemes(t, app, "/api/schemes?category=general,sc-st")
	if len(schemes) != 3 {
		t.Errorf("Expected all 3 schemes for the category union, got %d", len(schemes))
	}

	schemes = listSchemes(t, app, "/api/schemes?category=sc-st")
	if len(schemes) != 1 || schemeNames(schemes)[0] != "Post-Matric" {
		t.Errorf("Expected only Post-Matric, got %v", schemeNames(schemes))
	}

	schemes = listSchemes(t, app, "/api/schemes?international=1")
	if len(schemes) != 1 || schemeNames(schemes)[0] != "Global Research Fellowship" {
		t.Errorf("Expected only the international scheme, got %v", schemeNames(schemes))
	}

	schemes = listSchemes(t, app, "/api/schemes?q=Matric")
	if len(schemes) != 1 || schemeNames(schemes)[0] != "Post-Matric" {
		t.Errorf("Expected the free-text match, got %v", schemeNames(schemes))
	}
}

func TestGetSchemeEndpoint(t *testing.T) {
	app, db := setupTestApp(t)
	seedCatalog(t, db)

	resp, body := doJSON(t, app, "GET", "/api/schemes/1", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	scheme, ok := body["scheme"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected a scheme object, got %v", body)
	}
	if scheme["scheme_name"] != "National Merit" {
		t.Errorf("Expected National Merit, got %v", scheme["scheme_name"])
	}

	resp, body = doJSON(t, app, "GET", "/api/schemes/999", nil)
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 for an unknown scheme, got %d", resp.StatusCode)
	}
	if body["error"] != "Scheme not found" {
		t.Errorf("Expected not-found error, got %v", body["error"])
	}

	resp, _ = doJSON(t, app, "GET", "/api/schemes/abc", nil)
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for a non-numeric id, got %d", resp.StatusCode)
	}
}
