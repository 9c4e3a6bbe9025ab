package inter

import (
	"testing"
	"time"
)

func TestEpochString(t *testing.T) {
	tests := []struct {
		epoch Epoch
		want  string
	}{
		{GenesisEpoch, "0"},
		{44, "44"},
		{MaxEpoch, "max"},
	}

	for _, tt := range tests {
		if got := tt.epoch.String(); got != tt.want {
			t.Errorf("Epoch(%d).String() = %q, want %q", uint64(tt.epoch), got, tt.want)
		}
	}
}

func TestTimestampConversion(t *testing.T) {
	now := time.Unix(1714521600, 42)
	ts := FromUnixNano(now.UnixNano())
	if !ts.Time().Equal(now) {
		t.Errorf("timestamp round trip: got %v, want %v", ts.Time(), now)
	}

	if MaxTimestamp(1, 2) != 2 || MaxTimestamp(2, 1) != 2 {
		t.Error("MaxTimestamp did not pick the later timestamp")
	}
}
