package request

import (
	"encoding/json"
	"testing"
)

func TestResult_Tagging(t *testing.T) {
	t.Parallel()

	ok := Success(SourceLive, json.RawMessage(`{"x":1}`))
	if !ok.OK() || ok.Source != SourceLive {
		t.Errorf("Success() = %+v", ok)
	}

	fail := Failure(NewError(ErrRateLimit, "denied"))
	if fail.OK() {
		t.Error("Failure() should not be OK")
	}
	if fail.Err.Kind != ErrRateLimit {
		t.Errorf("Kind = %v, want RATE_LIMIT", fail.Err.Kind)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	type payload struct {
		X int `json:"x"`
	}

	got, err := Decode[payload](Success(SourceCache, json.RawMessage(`{"x":7}`)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.X != 7 {
		t.Errorf("X = %d, want 7", got.X)
	}

	if _, err := Decode[payload](Failure(NewError(ErrAPI, "down"))); err == nil {
		t.Error("decoding a failure should return its error")
	}

	if _, err := Decode[payload](Success(SourceLive, json.RawMessage(`not json`))); err == nil {
		t.Error("malformed value should fail to decode")
	}
}
