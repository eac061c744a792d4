package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLocationIndex_LastTwoSegments(t *testing.T) {
	idx := BuildLocationIndex([]Entity{{Address: RawOf("Rua X, São Paulo, SP")}})
	require.Equal(t, LocationIndex{"SP": {"São Paulo": {}}}, idx)
}

func TestBuildLocationIndex_Empty(t *testing.T) {
	require.Empty(t, BuildLocationIndex(nil))
	require.Empty(t, BuildLocationIndex([]Entity{}))
}

func TestBuildLocationIndex_SkipsUnparseable(t *testing.T) {
	entities := []Entity{
		{ID: 1, Address: RawOf(nil)},
		{ID: 2, Address: RawOf(3.14)},
		{ID: 3, Address: RawOf("   ")},
		{ID: 4, Address: RawOf("Brasil")},
		{ID: 5, Address: RawOf("Rua Y, Rio de Janeiro, RJ")},
		{ID: 6, Address: RawOf("Av. Atlântica, Niterói , RJ ")},
		{ID: 7, Address: RawOf("Rua Z, Santos, SP")},
		{ID: 8, Address: RawOf("Campinas,SP")},
		{ID: 9, Address: RawOf("Rua W, Rio de Janeiro, RJ")},
	}
	idx := BuildLocationIndex(entities)

	require.Equal(t, []string{"RJ", "SP"}, idx.States())
	require.Equal(t, []string{"Niterói", "Rio de Janeiro"}, idx.Cities("RJ"))
	require.Equal(t, []string{"Campinas", "Santos"}, idx.Cities("SP"))
	require.Empty(t, idx.Cities("MG"))
	require.True(t, idx.Has("SP", "Santos"))
	require.False(t, idx.Has("SP", "Niterói"))
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		address Raw
		want    Location
		ok      bool
	}{
		{name: "street city state", address: RawOf("Rua X, São Paulo, SP"), want: Location{State: "SP", City: "São Paulo"}, ok: true},
		{name: "city state", address: RawOf("Curitiba, PR"), want: Location{State: "PR", City: "Curitiba"}, ok: true},
		{name: "empty segments dropped", address: RawOf("Rua X, , SP,"), want: Location{State: "SP", City: "Rua X"}, ok: true},
		{name: "single segment", address: RawOf("Curitiba"), ok: false},
		{name: "null", address: RawOf(nil), ok: false},
		{name: "not a string", address: RawOf(10.0), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLocation(tt.address)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLocationIndex_MarshalJSONSorted(t *testing.T) {
	idx := BuildLocationIndex([]Entity{
		{Address: RawOf("Rua Z, Santos, SP")},
		{Address: RawOf("Rua A, Campinas, SP")},
	})
	data, err := json.Marshal(idx)
	require.NoError(t, err)
	require.JSONEq(t, `{"SP": ["Campinas", "Santos"]}`, string(data))
}
