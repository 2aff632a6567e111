package notify_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/notify"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	messages []published
	err      error
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.messages = append(c.messages, published{subject: subject, data: data})
	return nil
}

func TestPublisher_Emit(t *testing.T) {
	conn := &fakeConn{}
	publisher := notify.NewPublisher(conn, "raffle")

	event := runtime.NewEvent("raffle", "winner", runtime.NewAttribute("winner", "alice"))
	event.Tick = 25
	publisher.Emit(event)

	require.Len(t, conn.messages, 1)
	require.Equal(t, "raffle.raffle.winner", conn.messages[0].subject)

	var decoded runtime.Event
	require.NoError(t, json.Unmarshal(conn.messages[0].data, &decoded))
	require.Equal(t, event, decoded)
}

func TestPublisher_EmitFailureIsDropped(t *testing.T) {
	conn := &fakeConn{err: errors.New("disconnected")}
	publisher := notify.NewPublisher(conn, "raffle")

	require.NotPanics(t, func() {
		publisher.Emit(runtime.NewEvent("system", "remarked"))
	})
	require.Empty(t, conn.messages)
}

type submission struct {
	origin  runtime.Origin
	encoded []byte
}

type fakeSubmitter struct {
	submissions []submission
	err         error
}

func (s *fakeSubmitter) Submit(_ context.Context, origin runtime.Origin, encoded []byte) error {
	s.submissions = append(s.submissions, submission{origin: origin, encoded: encoded})
	return s.err
}

func handle(t *testing.T, consumer *notify.Consumer, request any) notify.SubmitResponse {
	data, ok := request.([]byte)
	if !ok {
		var err error
		data, err = json.Marshal(request)
		require.NoError(t, err)
	}

	var response notify.SubmitResponse
	require.NoError(t, json.Unmarshal(consumer.Handle(data), &response))
	return response
}

func newKey(t *testing.T) ed25519.PrivateKey {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return key
}

func TestConsumer_Handle(t *testing.T) {
	submitter := &fakeSubmitter{}
	consumer := notify.NewConsumer(context.Background(), submitter, "raffle")
	require.Equal(t, "raffle.submit", consumer.Subject())

	key := newKey(t)
	account := notify.AccountOf(key.Public().(ed25519.PublicKey))
	call := mustCall(runtime.Remark([]byte("hi"))).Encode()

	response := handle(t, consumer, notify.SignRequest(key, call))
	require.True(t, response.OK)
	require.Empty(t, response.Error)

	response = handle(t, consumer, notify.SubmitRequest{Call: hex.EncodeToString(call)})
	require.True(t, response.OK)

	require.Len(t, submitter.submissions, 2)
	require.Equal(t, runtime.Signed(account), submitter.submissions[0].origin)
	require.Equal(t, call, submitter.submissions[0].encoded)
	require.Equal(t, runtime.None(), submitter.submissions[1].origin)
}

func TestConsumer_RejectsUnauthenticatedOrigins(t *testing.T) {
	submitter := &fakeSubmitter{}
	consumer := notify.NewConsumer(context.Background(), submitter, "raffle")

	key := newKey(t)
	call := mustCall(runtime.Remark([]byte("hi"))).Encode()
	other := mustCall(runtime.Remark([]byte("other"))).Encode()

	root := notify.SubmitRequest{Root: true, Call: hex.EncodeToString(call)}
	claimed := notify.SubmitRequest{Signer: "manager", Call: hex.EncodeToString(call)}
	unsigned := notify.SignRequest(key, call)
	unsigned.Signature = ""
	replaced := notify.SignRequest(key, call)
	replaced.Call = hex.EncodeToString(other)
	impersonated := notify.SignRequest(newKey(t), call)
	impersonated.Signer = notify.SignRequest(key, call).Signer
	anonymous := notify.SubmitRequest{Signature: notify.SignRequest(key, call).Signature, Call: hex.EncodeToString(call)}

	response := handle(t, consumer, root)
	require.False(t, response.OK)
	require.Contains(t, response.Error, notify.ErrRootRejected.Error())

	for name, request := range map[string]notify.SubmitRequest{
		"claimed signer":       claimed,
		"missing signature":    unsigned,
		"replaced call":        replaced,
		"foreign signature":    impersonated,
		"signature without id": anonymous,
	} {
		t.Run(name, func(t *testing.T) {
			response := handle(t, consumer, request)
			require.False(t, response.OK)
			require.Contains(t, response.Error, notify.ErrBadSignature.Error())
		})
	}
	require.Empty(t, submitter.submissions)
}

func TestConsumer_HandleErrors(t *testing.T) {
	submitter := &fakeSubmitter{err: runtime.ErrHalted}
	consumer := notify.NewConsumer(context.Background(), submitter, "raffle")

	response := handle(t, consumer, []byte("{not json"))
	require.False(t, response.OK)
	require.Contains(t, response.Error, "malformed request")

	response = handle(t, consumer, notify.SubmitRequest{Call: "zz"})
	require.False(t, response.OK)
	require.Contains(t, response.Error, "malformed call")
	require.Empty(t, submitter.submissions)

	response = handle(t, consumer, notify.SignRequest(newKey(t), []byte{0, 0}))
	require.False(t, response.OK)
	require.Contains(t, response.Error, runtime.ErrHalted.Error())
}

func TestConsumer_StopWithoutStart(t *testing.T) {
	consumer := notify.NewConsumer(context.Background(), &fakeSubmitter{}, "raffle")
	require.NoError(t, consumer.Stop())
}

func mustCall(call runtime.Call, err error) runtime.Call {
	if err != nil {
		panic(err)
	}
	return call
}
