package gcalendar_test

import (
	"context"
	"testing"

	"ai-daily-planner/pkg/gcalendar"
)

func TestNewClientFromCredentialsFileMissing(t *testing.T) {
	_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "does-not-exist.json")
	if err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}

func TestNewClientFromCredentialsJSONInvalid(t *testing.T) {
	_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"not": "credentials"}`))
	if err == nil {
		t.Fatal("expected error for non-service-account JSON")
	}
}
