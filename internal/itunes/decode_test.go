package itunes

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/itunes-gallery/internal/model"
)

func TestDecode(t *testing.T) {
	body := []byte(`{"resultCount":2,"results":[
		{"wrapperType":"track","artworkUrl100":"https://a/1.jpg"},
		{"wrapperType":"collection","artworkUrl60":"ignored","artworkUrl100":"https://a/2.jpg"}
	]}`)

	got, err := Decode(body)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := &model.SearchResult{
		ResultCount: 2,
		Items: []model.ArtworkEntry{
			{ArtworkURL: "https://a/1.jpg"},
			{ArtworkURL: "https://a/2.jpg"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_CapsAtLimit(t *testing.T) {
	parts := make([]string, ResultLimit+10)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"artworkUrl100":"u%d"}`, i)
	}
	body := fmt.Sprintf(`{"resultCount":%d,"results":[%s]}`, len(parts), strings.Join(parts, ","))

	got, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got.Items) != ResultLimit {
		t.Errorf("Expected %d items, got %d", ResultLimit, len(got.Items))
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, body := range []string{"", "not json", `{"resultCount":"many"}`, `{}`} {
		_, err := Decode([]byte(body))
		if !errors.Is(err, ErrRequestFailed) {
			t.Errorf("Decode(%q) error = %v, expected ErrRequestFailed", body, err)
		}
	}
}

func TestCheckResultCount(t *testing.T) {
	tests := []struct {
		count   int
		wantErr bool
	}{
		{0, true},
		{3, true},
		{20, true},
		{21, false},
		{200, false},
	}

	for _, test := range tests {
		err := CheckResultCount("u", &model.SearchResult{ResultCount: test.count})
		if (err != nil) != test.wantErr {
			t.Errorf("CheckResultCount(%d) error = %v, wantErr %v", test.count, err, test.wantErr)
		}
		if _, ok := AsInsufficientResults(err); err != nil && !ok {
			t.Errorf("CheckResultCount(%d) returned %T", test.count, err)
		}
	}
}
