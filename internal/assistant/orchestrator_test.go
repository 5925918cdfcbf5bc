package assistant

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	errx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core/error"
)

type stubClassifier struct {
	set   model.IntentSet
	trace string
	err   error
}

func (s *stubClassifier) Classify(context.Context, *model.Conversation) (model.IntentSet, string, error) {
	return s.set, s.trace, s.err
}

type stubAgent struct {
	text  string
	err   error
	delay time.Duration

	calls          atomic.Int32
	userLenAtRun   atomic.Int32
	tracePresentAt atomic.Bool
}

func (s *stubAgent) Run(_ context.Context, conv *model.Conversation) (string, error) {
	s.calls.Add(1)
	s.userLenAtRun.Store(int32(len(conv.User)))
	if len(conv.User) > 0 && conv.User[len(conv.User)-1].Role == schema.Assistant {
		s.tracePresentAt.Store(true)
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.text, s.err
}

func intents(labels ...model.Intent) model.IntentSet {
	set := model.IntentSet{}
	for _, l := range labels {
		set.Add(l)
	}
	return set
}

func newStubbed(set model.IntentSet, trace string) (*Orchestrator, *stubAgent, *stubAgent, *stubAgent, *stubAgent) {
	flight := &stubAgent{text: "FLIGHT BLOCK"}
	hotel := &stubAgent{text: "HOTEL BLOCK"}
	location := &stubAgent{text: "LOCATION BLOCK"}
	general := &stubAgent{text: "GENERAL BLOCK"}
	orch := NewOrchestrator(&stubClassifier{set: set, trace: trace}, flight, hotel, location, general)
	return orch, flight, hotel, location, general
}

func TestProcessInputFourSegmentOrder(t *testing.T) {
	tests := []struct {
		name string
		set  model.IntentSet
		want string
	}{
		{
			name: "flight only",
			set:  intents(model.IntentFlight),
			want: "FLIGHT BLOCK\n\n\n",
		},
		{
			name: "general only",
			set:  intents(model.IntentGeneral),
			want: "\n\n\nGENERAL BLOCK",
		},
		{
			name: "flight and general",
			set:  intents(model.IntentFlight, model.IntentGeneral),
			want: "FLIGHT BLOCK\n\n\nGENERAL BLOCK",
		},
		{
			name: "all four",
			set:  intents(model.IntentFlight, model.IntentHotel, model.IntentLocation, model.IntentGeneral),
			want: "FLIGHT BLOCK\nHOTEL BLOCK\nLOCATION BLOCK\nGENERAL BLOCK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orch, _, _, _, _ := newStubbed(tt.set, "trace")
			out, err := orch.ProcessInput(context.Background(), NewSession(), "hello")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			assert.Equal(t, 4, len(strings.Split(out, "\n")), "always exactly four segments")
		})
	}
}

func TestProcessInputRunsOnlySelectedAgents(t *testing.T) {
	orch, flight, hotel, location, general := newStubbed(intents(model.IntentHotel, model.IntentLocation), "hotel, location")
	_, err := orch.ProcessInput(context.Background(), NewSession(), "hotels near attractions in Orlando")
	require.NoError(t, err)

	assert.Zero(t, flight.calls.Load())
	assert.Equal(t, int32(1), hotel.calls.Load())
	assert.Equal(t, int32(1), location.calls.Load())
	assert.Zero(t, general.calls.Load())
}

func TestProcessInputEmptyClassificationFallsBackToGeneral(t *testing.T) {
	// a real classifier never returns an empty set: garbled model output is
	// parsed into {general} before the orchestrator sees it
	gw := &fakeClassifyClient{reply: "banana ???"}
	flight := &stubAgent{text: "F"}
	general := &stubAgent{text: "G"}
	orch := NewOrchestrator(NewIntentClassifier(gw), flight, &stubAgent{}, &stubAgent{}, general)

	out, err := orch.ProcessInput(context.Background(), NewSession(), "what can you do?")
	require.NoError(t, err)

	assert.Equal(t, int32(1), general.calls.Load(), "general agent invoked exactly once")
	assert.Zero(t, flight.calls.Load())
	assert.Equal(t, "\n\n\nG", out)
}

type fakeClassifyClient struct {
	reply string
	err   error

	gotMsgs []*schema.Message
}

func (f *fakeClassifyClient) Classify(_ context.Context, msgs []*schema.Message) (string, error) {
	f.gotMsgs = msgs
	return f.reply, f.err
}

func TestProcessInputHistoryInvariants(t *testing.T) {
	orch, flight, _, _, _ := newStubbed(intents(model.IntentFlight), "flight")
	conv := NewSession()

	require.Len(t, conv.Full, 1, "session starts with the system prompt")

	out, err := orch.ProcessInput(context.Background(), conv, "find flights to New York")
	require.NoError(t, err)

	// user turn and classifier trace both land in the user view before any
	// sub-agent runs
	assert.Equal(t, int32(2), flight.userLenAtRun.Load())
	assert.True(t, flight.tracePresentAt.Load())

	require.Len(t, conv.Full, 3, "system + user + assistant")
	assert.Equal(t, schema.User, conv.Full[1].Role)
	assert.Equal(t, "find flights to New York", conv.Full[1].Content)
	assert.Equal(t, schema.Assistant, conv.Full[2].Role)
	assert.Equal(t, out, conv.Full[2].Content, "final response is appended to the full view")

	require.Len(t, conv.User, 2)
	assert.Equal(t, "flight", conv.User[1].Content, "trace is the raw classifier output, not the response")

	// a second turn only grows the histories
	_, err = orch.ProcessInput(context.Background(), conv, "make it round trip")
	require.NoError(t, err)
	assert.Len(t, conv.Full, 5)
	assert.Len(t, conv.User, 4)
}

func TestProcessInputClassifierSeesFullHistory(t *testing.T) {
	gw := &fakeClassifyClient{reply: "general"}
	orch := NewOrchestrator(NewIntentClassifier(gw), &stubAgent{}, &stubAgent{}, &stubAgent{}, &stubAgent{text: "G"})
	conv := NewSession()

	_, err := orch.ProcessInput(context.Background(), conv, "how far is Tokyo from New York?")
	require.NoError(t, err)

	require.NotEmpty(t, gw.gotMsgs)
	assert.Equal(t, schema.System, gw.gotMsgs[0].Role, "few-shot classifier prompt leads")
	last := gw.gotMsgs[len(gw.gotMsgs)-1]
	assert.Equal(t, schema.User, last.Role)
	assert.Equal(t, "how far is Tokyo from New York?", last.Content)
}

func TestProcessInputClassifierFailureTerminatesTurn(t *testing.T) {
	gwErr := errx.WrapGateway(errors.New("rate limited"))
	orch := NewOrchestrator(&stubClassifier{err: gwErr}, &stubAgent{}, &stubAgent{}, &stubAgent{}, &stubAgent{})
	conv := NewSession()

	_, err := orch.ProcessInput(context.Background(), conv, "hello")
	require.Error(t, err)
	assert.True(t, errx.IsKind(err, errx.KindGateway))
	assert.Len(t, conv.Full, 2, "the user turn stays recorded even when the turn fails")
}

func TestProcessInputAgentGatewayFailurePropagates(t *testing.T) {
	orch, _, _, _, general := newStubbed(intents(model.IntentGeneral), "general")
	general.err = errx.WrapGateway(errors.New("timeout"))

	_, err := orch.ProcessInput(context.Background(), NewSession(), "hello")
	require.Error(t, err)
	assert.True(t, errx.IsKind(err, errx.KindGateway))
}

func TestProcessInputOrderIndependentOfCompletion(t *testing.T) {
	orch, flight, _, _, general := newStubbed(intents(model.IntentFlight, model.IntentGeneral), "flight, general")
	flight.delay = 30 * time.Millisecond // general finishes first
	general.delay = 0

	out, err := orch.ProcessInput(context.Background(), NewSession(), "plan a trip")
	require.NoError(t, err)
	assert.Equal(t, "FLIGHT BLOCK\n\n\nGENERAL BLOCK", out)
}
