package service

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLinksFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "links.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write links file: %v", err)
	}
	return path
}

func TestGetLinks(t *testing.T) {
	path := writeLinksFile(t, `
- name: Grafana
  url: http://grafana.local
  group: infra
  icon: chart
- name: Pi-hole
  url: http://pihole.local
`)

	links, err := NewLinksService(path).GetLinks()
	if err != nil {
		t.Fatalf("GetLinks: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if links[0].Name != "Grafana" || links[0].URL != "http://grafana.local" {
		t.Errorf("first link = %+v", links[0])
	}
	if links[0].Group != "infra" || links[0].Icon != "chart" {
		t.Errorf("first link extras = %+v", links[0])
	}
	if links[1].Group != "" {
		t.Errorf("group should stay empty when omitted, got %q", links[1].Group)
	}
}

func TestGetLinksSkipsInvalidRows(t *testing.T) {
	path := writeLinksFile(t, `
- name: Valid
  url: http://valid.local
- name: ""
  url: http://no-name.local
- url: http://nameless.local
- just a scalar
`)

	links, err := NewLinksService(path).GetLinks()
	if err != nil {
		t.Fatalf("GetLinks: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1 (invalid rows skipped)", len(links))
	}
	if links[0].Name != "Valid" {
		t.Errorf("kept link = %+v", links[0])
	}
}

func TestGetLinksMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	links, err := NewLinksService(path).GetLinks()
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if len(links) != 0 {
		t.Errorf("got %d links from a missing file", len(links))
	}
}

func TestGetLinksMalformedYAML(t *testing.T) {
	path := writeLinksFile(t, "\t{{not yaml at all")
	if _, err := NewLinksService(path).GetLinks(); err == nil {
		t.Error("malformed yaml should be an error")
	}
}
