package hermes

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSubjectsLiveUnderStreamPrefix(t *testing.T) {
	for _, s := range []string{SubjectComputeCompleted("abc"), SubjectComputeFailed("abc")} {
		if !strings.HasPrefix(s, subjectPrefix) {
			t.Errorf("subject %s is outside stream prefix %s", s, subjectPrefix)
		}
	}
	if got := SubjectComputeCompleted("abc"); got != "concord.compute.abc.completed" {
		t.Errorf("unexpected subject %s", got)
	}
	if got := SubjectComputeFailed("abc"); got != "concord.compute.abc.failed" {
		t.Errorf("unexpected subject %s", got)
	}
}

func TestStreamMaxAgeParses(t *testing.T) {
	d, err := time.ParseDuration(StreamMaxAge)
	if err != nil {
		t.Fatalf("invalid StreamMaxAge: %v", err)
	}
	if d != 7*24*time.Hour {
		t.Errorf("expected 7 days, got %v", d)
	}
}

func TestComputeFailedEventJSON(t *testing.T) {
	ev := ComputeFailedEvent{ComputationID: "x", Kind: "divide_by_zero", Error: "weights sum to zero"}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"kind":"divide_by_zero"`) {
		t.Errorf("missing kind in %s", data)
	}
}
