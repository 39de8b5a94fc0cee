package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xcoulter/actions"
)

func withActionsFile(t *testing.T, name, content string) {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	old := *actionsFile
	*actionsFile = file
	t.Cleanup(func() { *actionsFile = old })
}

func TestDecodeDataset_CSV(t *testing.T) {
	withActionsFile(t, "actions.csv",
		"timestamp,status,asset,shortTermGainLoss,longTermGainLoss,assetBalance\n"+
			"2024-01-05T00:00:00Z,complete,BTC,6.5,0,150\n"+
			"2024-01-06T00:00:00Z,pending,BTC,1,0,151\n")

	ds, total, err := DecodeDataset()
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	if total != 2 {
		t.Errorf("total rows = %d, want 2", total)
	}
	if len(ds.Records) != 1 {
		t.Errorf("completed records = %d, want 1", len(ds.Records))
	}
}

func TestDecodeDataset_JSONByExtension(t *testing.T) {
	withActionsFile(t, "actions.json", `{"actions": [
		{"timestamp": "2024-01-05T00:00:00Z", "status": "complete", "asset": "BTC",
		 "shortTermGainLoss": "6.5", "longTermGainLoss": "0", "assetBalance": "150"}
	]}`)

	ds, total, err := DecodeDataset()
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	if total != 1 || len(ds.Records) != 1 {
		t.Errorf("total = %d, records = %d, want 1 and 1", total, len(ds.Records))
	}
}

func TestDecodeDataset_MissingFile(t *testing.T) {
	old := *actionsFile
	*actionsFile = filepath.Join(t.TempDir(), "nope.csv")
	t.Cleanup(func() { *actionsFile = old })

	if _, _, err := DecodeDataset(); err == nil {
		t.Error("DecodeDataset() should fail on a missing file")
	}
}

func TestLatestMonth(t *testing.T) {
	withActionsFile(t, "actions.csv",
		"timestamp,status,asset,shortTermGainLoss,longTermGainLoss,assetBalance\n"+
			"2024-01-05T00:00:00Z,complete,BTC,1,0,10\n"+
			"2024-03-05T00:00:00Z,complete,BTC,2,0,20\n")

	ds, _, err := DecodeDataset()
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	month, err := latestMonth(ds)
	if err != nil {
		t.Fatalf("latestMonth() error = %v", err)
	}
	if month != actions.NewMonth(2024, time.March) {
		t.Errorf("latestMonth() = %v, want 2024-03", month)
	}

	if _, err := latestMonth(actions.Normalize(nil, actions.Schema{}, "UTC")); err == nil {
		t.Error("latestMonth() should fail on an empty dataset")
	}
}
