package core

import (
	"errors"
	"testing"
)

func TestValidateLocation(t *testing.T) {
	tests := []struct {
		name    string
		loc     *Location
		wantErr error
	}{
		{name: "valid with title", loc: &Location{Title: "Zentrum Hamburg"}},
		{name: "valid with city only", loc: &Location{City: "Hamburg"}},
		{name: "nil location", loc: nil, wantErr: ErrInvalidLocation},
		{name: "no name", loc: &Location{Address: "Straße 1"}, wantErr: ErrEmptyLocationName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLocation(tt.loc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateLocation() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLocation() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFAQPair(t *testing.T) {
	tests := []struct {
		name    string
		pair    FAQPair
		wantErr error
	}{
		{name: "valid", pair: NewFAQPair("Frage?", "Antwort.")},
		{name: "empty question", pair: NewFAQPair(" ", "Antwort."), wantErr: ErrEmptyQuestion},
		{name: "empty answer", pair: NewFAQPair("Frage?", ""), wantErr: ErrEmptyAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFAQPair(tt.pair)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateFAQPair() unexpected error = %v", err)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrInvalidFAQPair) {
					t.Errorf("ValidateFAQPair() error = %v, want %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateFAQIndex(t *testing.T) {
	if err := ValidateFAQIndex(nil); err != nil {
		t.Errorf("ValidateFAQIndex(nil) = %v", err)
	}
	ok := &FAQIndex{Pairs: make([]FAQPair, 1), Vectors: [][]float32{{1}}}
	if err := ValidateFAQIndex(ok); err != nil {
		t.Errorf("ValidateFAQIndex() unexpected error = %v", err)
	}
	bad := &FAQIndex{Pairs: make([]FAQPair, 2), Vectors: [][]float32{{1}}}
	if err := ValidateFAQIndex(bad); !errors.Is(err, ErrVectorCountMismatch) {
		t.Errorf("ValidateFAQIndex() error = %v, want %v", err, ErrVectorCountMismatch)
	}
}

func TestValidateJobURL(t *testing.T) {
	if err := ValidateJobURL("https://example.com/jobs/physio-hamburg-1"); err != nil {
		t.Errorf("ValidateJobURL() unexpected error = %v", err)
	}
	for _, bad := range []string{"https://example.com", "https://example.com/jobs/123", "://bad"} {
		if err := ValidateJobURL(bad); !errors.Is(err, ErrInvalidJobURL) {
			t.Errorf("ValidateJobURL(%q) error = %v, want %v", bad, err, ErrInvalidJobURL)
		}
	}
}
