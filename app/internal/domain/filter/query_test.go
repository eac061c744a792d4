package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{name: "default", state: Default()},
		{
			name:  "directory filters",
			state: State{Search: "solar", Category: ptr(int64(3)), State: ptr("SP"), City: ptr("São Paulo"), Rating: ptr(4)},
		},
		{
			name:  "price range",
			state: State{MinPrice: ptr(99.9), MaxPrice: ptr(1500.0)},
		},
		{
			name:  "padded search term",
			state: State{Search: "  solar panel "},
		},
		{
			name:  "reserved characters",
			state: State{Search: "sol & vento = 100%", State: ptr("Rio Grande do Sul")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(Encode(tt.state))
			if diff := cmp.Diff(tt.state, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_OmitsEmptyFieldsInFieldOrder(t *testing.T) {
	s := State{Search: "solar", Category: ptr(int64(3)), State: ptr("SP"), City: ptr("Santos"), Rating: ptr(4)}
	require.Equal(t, "search=solar&category=3&state=SP&city=Santos&rating=4", Encode(s))
	require.Equal(t, "", Encode(Default()))
	require.Equal(t, "rating=2", Encode(State{Rating: ptr(2), State: ptr("")}))
}

func TestDecode_Lenient(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  State
	}{
		{name: "leading question mark", query: "?search=solar", want: State{Search: "solar"}},
		{name: "unknown keys ignored", query: "color=blue&rating=3", want: State{Rating: ptr(3)}},
		{name: "bad integers dropped", query: "category=abc&rating=four", want: Default()},
		{name: "rating clamped", query: "rating=12", want: State{Rating: ptr(5)}},
		{name: "city without state dropped", query: "city=Santos", want: Default()},
		{name: "empty values dropped", query: "search=&state=", want: Default()},
		{name: "empty string", query: "", want: Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Decode(tt.query)); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}
