package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jonwraymond/vizexec/payload"
	"github.com/jonwraymond/vizexec/remote"
	"github.com/jonwraymond/vizexec/render"
)

func TestNew_RequiresClient(t *testing.T) {
	_, err := New(Config{})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("New() error = %v, want ErrConfiguration", err)
	}
}

func TestNew_InitialState(t *testing.T) {
	s, err := New(Config{Client: &mockClient{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if diff := cmp.Diff(NewState(), s.Current()); diff != "" {
		t.Errorf("Current() mismatch (-want +got):\n%s", diff)
	}

	initial := State{Language: payload.LanguageR, OutputMode: payload.ModeStatic, Busy: true}
	s, err = New(Config{Client: &mockClient{}, Initial: &initial})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := s.Current(); got.Language != payload.LanguageR || got.Busy {
		t.Errorf("Current() = %+v, want R and not busy", got)
	}
}

func TestSubmit_Success(t *testing.T) {
	client := &mockClient{viz: "<!DOCTYPE html><html></html>"}
	s, _ := New(Config{Client: client})

	in := NewState()
	in.Code = "print(1)"
	in.Error = "stale error"

	got, err := s.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	want := State{
		Language:      payload.LanguagePython,
		OutputMode:    payload.ModeInteractive,
		Code:          "print(1)",
		Visualization: "<!DOCTYPE html><html></html>",
		Submission:    1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Submit() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, s.Current()); diff != "" {
		t.Errorf("Current() mismatch (-want +got):\n%s", diff)
	}

	calls := client.Calls()
	if len(calls) != 1 {
		t.Fatalf("client calls = %d, want 1", len(calls))
	}
	if calls[0].Code != "output_mode = 'interactive'\nprint(1)" || calls[0].Language != "python" {
		t.Errorf("payload = %+v", calls[0])
	}

	inst, ok := got.Render()
	if !ok || inst.Kind != render.KindHTMLDocument {
		t.Errorf("Render() = %+v, %v", inst, ok)
	}
}

func TestSubmit_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing artifact", remote.ErrMissingVisualization, MissingVisualizationMessage},
		{"empty artifact without error", nil, MissingVisualizationMessage},
		{"status with message", &remote.StatusError{StatusCode: 400, Message: "Unsupported language: go"}, "Unsupported language: go"},
		{"status without message", &remote.StatusError{StatusCode: 500}, GenericErrorMessage},
		{"unreachable", fmt.Errorf("%w: dial tcp: refused", remote.ErrConnectionFailed), GenericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := New(Config{Client: &mockClient{err: tt.err}})
			in := NewState()
			in.Visualization = "data:image/png;base64,OLD"

			got, err := s.Submit(context.Background(), in)
			if err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if got.Error != tt.want {
				t.Errorf("Error = %q, want %q", got.Error, tt.want)
			}
			if got.Visualization != "" {
				t.Errorf("Visualization = %q, want cleared", got.Visualization)
			}
			if got.Busy {
				t.Error("Busy = true after completion")
			}
			if _, ok := got.Render(); ok {
				t.Error("Render() ok = true for a failed submission")
			}
		})
	}
}

func TestSubmit_UnsupportedArtifactIsNotAnError(t *testing.T) {
	s, _ := New(Config{Client: &mockClient{viz: "some plain text"}})
	got, err := s.Submit(context.Background(), NewState())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got.Error != "" {
		t.Errorf("Error = %q, want empty", got.Error)
	}
	inst, ok := got.Render()
	if !ok || inst.Kind != render.KindUnsupported || inst.Text != render.UnsupportedNotice {
		t.Errorf("Render() = %+v, %v", inst, ok)
	}
}

func TestSubmit_InvalidRequest(t *testing.T) {
	client := &mockClient{viz: "x"}
	s, _ := New(Config{Client: client})

	in := NewState()
	in.Language = "julia"
	_, err := s.Submit(context.Background(), in)
	if !errors.Is(err, payload.ErrUnsupportedLanguage) {
		t.Errorf("Submit() error = %v, want ErrUnsupportedLanguage", err)
	}
	if len(client.Calls()) != 0 {
		t.Error("client called for invalid request")
	}
	if s.Busy() {
		t.Error("Busy() = true after rejected request")
	}
}

func TestSubmit_UsableAfterFailure(t *testing.T) {
	client := &mockClient{err: remote.ErrMissingVisualization}
	s, _ := New(Config{Client: client})

	first, _ := s.Submit(context.Background(), NewState())
	if first.Error == "" {
		t.Fatal("expected first submission to fail")
	}

	client.mu.Lock()
	client.err = nil
	client.viz = "data:image/png;base64,AAAA"
	client.mu.Unlock()

	second, err := s.Submit(context.Background(), first)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if second.Error != "" || second.Visualization == "" {
		t.Errorf("second submission = %+v", second)
	}
	if second.Submission != 2 {
		t.Errorf("Submission = %d, want 2", second.Submission)
	}
}

func TestSubmit_BackendReplies(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantViz   string
		wantError string
		wantKind  render.Kind
	}{
		{
			name:     "whitespace artifact shows the unsupported notice",
			body:     `{"visualization":"   "}`,
			wantViz:  "   ",
			wantKind: render.KindUnsupported,
		},
		{
			name:      "plain text success body",
			body:      "OK",
			wantError: MissingVisualizationMessage,
		},
		{
			name:      "JSON string success body",
			body:      `"done"`,
			wantError: MissingVisualizationMessage,
		},
		{
			name:      "empty object",
			body:      `{}`,
			wantError: MissingVisualizationMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			t.Cleanup(srv.Close)

			client, err := remote.New(remote.Config{Endpoint: srv.URL, HTTPClient: srv.Client()})
			if err != nil {
				t.Fatalf("remote.New() error = %v", err)
			}
			s, _ := New(Config{Client: client})

			got, err := s.Submit(context.Background(), NewState())
			if err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if got.Visualization != tt.wantViz || got.Error != tt.wantError {
				t.Errorf("Submit() = Visualization %q Error %q, want %q %q",
					got.Visualization, got.Error, tt.wantViz, tt.wantError)
			}
			if (got.Visualization == "") == (got.Error == "") {
				t.Errorf("exactly one of Visualization and Error must be set: %+v", got)
			}

			inst, ok := got.Render()
			if tt.wantError != "" {
				if ok {
					t.Errorf("Render() ok = true for a failed submission")
				}
				return
			}
			if !ok || inst.Kind != tt.wantKind {
				t.Errorf("Render() = %+v, %v, want kind %v", inst, ok, tt.wantKind)
			}
		})
	}
}

func TestSubmit_CancelAndReplace(t *testing.T) {
	client := newBlockingClient()
	s, _ := New(Config{Client: client})

	type outcome struct {
		st  State
		err error
	}
	firstDone := make(chan outcome, 1)

	first := NewState()
	first.Code = "first"
	go func() {
		st, err := s.Submit(context.Background(), first)
		firstDone <- outcome{st, err}
	}()
	waitStarted(t, client, "output_mode = 'interactive'\nfirst")
	if !s.Busy() {
		t.Error("Busy() = false while first submission is in flight")
	}

	secondDone := make(chan outcome, 1)
	second := NewState()
	second.Code = "second"
	go func() {
		st, err := s.Submit(context.Background(), second)
		secondDone <- outcome{st, err}
	}()
	waitStarted(t, client, "output_mode = 'interactive'\nsecond")

	select {
	case out := <-firstDone:
		if !errors.Is(out.err, ErrSuperseded) {
			t.Errorf("first Submit() error = %v, want ErrSuperseded", out.err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("first submission was not canceled")
	}

	client.release <- "data:image/png;base64,SECOND"

	select {
	case out := <-secondDone:
		if out.err != nil {
			t.Fatalf("second Submit() error = %v", out.err)
		}
		if out.st.Visualization != "data:image/png;base64,SECOND" {
			t.Errorf("Visualization = %q", out.st.Visualization)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("second submission did not complete")
	}

	cur := s.Current()
	if cur.Code != "second" || cur.Busy || cur.Submission != 2 {
		t.Errorf("Current() = %+v", cur)
	}
}

func TestSubmit_CallerCancellation(t *testing.T) {
	client := newBlockingClient()
	s, _ := New(Config{Client: client})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan State, 1)
	go func() {
		st, _ := s.Submit(ctx, NewState())
		done <- st
	}()
	waitStarted(t, client, "output_mode = 'interactive'\n")
	cancel()

	select {
	case st := <-done:
		if st.Error != GenericErrorMessage {
			t.Errorf("Error = %q, want %q", st.Error, GenericErrorMessage)
		}
		if st.Busy {
			t.Error("Busy = true after cancellation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Submit() did not return after cancellation")
	}
}

func waitStarted(t *testing.T, client *blockingClient, want string) {
	t.Helper()
	select {
	case got := <-client.started:
		if got != want {
			t.Fatalf("started code = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("submission %q did not start", want)
	}
}
