package notify

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var (
	// ErrRootRejected is returned for requests asking for the root origin,
	// which is only available to local tooling.
	ErrRootRejected = errors.New("root origin is not accepted over the bus")
	// ErrBadSignature is returned when a signed request does not verify.
	ErrBadSignature = errors.New("bad signature")
)

// SubmitRequest is an externally submitted call. A request with a signer must
// carry the signer's ed25519 signature over the call bytes and runs as that
// account; without a signer the call runs with no origin.
type SubmitRequest struct {
	Root bool `json:"root,omitempty"`
	// Signer is the hex encoded ed25519 public key of the submitting account.
	Signer string `json:"signer,omitempty"`
	// Signature is the hex encoded signature of the decoded call bytes.
	Signature string `json:"signature,omitempty"`
	// Call is the hex encoded call, with or without a 0x prefix.
	Call string `json:"call"`
}

// SignRequest builds a request for encoded signed with key.
func SignRequest(key ed25519.PrivateKey, encoded []byte) SubmitRequest {
	public := key.Public().(ed25519.PublicKey)
	return SubmitRequest{
		Signer:    "0x" + hex.EncodeToString(public),
		Signature: "0x" + hex.EncodeToString(ed25519.Sign(key, encoded)),
		Call:      "0x" + hex.EncodeToString(encoded),
	}
}

// AccountOf returns the account controlled by an ed25519 public key.
func AccountOf(public ed25519.PublicKey) runtime.AccountID {
	return runtime.AccountID("0x" + hex.EncodeToString(public))
}

// Origin verifies the request against the decoded call bytes and returns the
// origin the call runs with.
func (r SubmitRequest) Origin(encoded []byte) (runtime.Origin, error) {
	if r.Root {
		return runtime.Origin{}, ErrRootRejected
	}
	if r.Signer == "" {
		if r.Signature != "" {
			return runtime.Origin{}, fmt.Errorf("%w: signature without signer", ErrBadSignature)
		}
		return runtime.None(), nil
	}

	public, err := decodeHex(r.Signer)
	if err != nil || len(public) != ed25519.PublicKeySize {
		return runtime.Origin{}, fmt.Errorf("%w: signer %q is not an ed25519 public key", ErrBadSignature, r.Signer)
	}
	signature, err := decodeHex(r.Signature)
	if err != nil || len(signature) != ed25519.SignatureSize {
		return runtime.Origin{}, fmt.Errorf("%w: malformed signature", ErrBadSignature)
	}
	if !ed25519.Verify(public, encoded, signature) {
		return runtime.Origin{}, fmt.Errorf("%w: signature does not match the call", ErrBadSignature)
	}
	return runtime.Signed(AccountOf(public)), nil
}

func decodeHex(value string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(value, "0x"))
}

type SubmitResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type Submitter interface {
	Submit(ctx context.Context, origin runtime.Origin, encoded []byte) error
}

// Consumer feeds calls received on <prefix>.submit into the runtime and
// answers each request with a SubmitResponse.
type Consumer struct {
	ctx       context.Context
	submitter Submitter
	subject   string

	subscription *nats.Subscription
}

func NewConsumer(ctx context.Context, submitter Submitter, prefix string) *Consumer {
	return &Consumer{
		ctx:       ctx,
		submitter: submitter,
		subject:   prefix + ".submit",
	}
}

func (c *Consumer) Subject() string {
	return c.subject
}

func (c *Consumer) Start(conn *nats.Conn) error {
	logger.Debug("notify: subscribing...", zap.String("subject", c.subject))
	subscription, err := conn.Subscribe(c.subject, func(msg *nats.Msg) {
		response := c.Handle(msg.Data)
		if msg.Reply == "" {
			return
		}
		if err := msg.Respond(response); err != nil {
			logger.Warn("notify: cannot respond", zap.String("reply", msg.Reply), zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", c.subject, err)
	}
	c.subscription = subscription
	logger.Debug("notify: subscribing... done", zap.String("subject", c.subject))
	return nil
}

func (c *Consumer) Stop() error {
	if c.subscription == nil {
		return nil
	}
	return c.subscription.Unsubscribe()
}

// Handle decodes a request, submits it and returns the encoded response.
func (c *Consumer) Handle(data []byte) []byte {
	response := SubmitResponse{OK: true}
	if err := c.submit(data); err != nil {
		response = SubmitResponse{Error: err.Error()}
	}

	payload, err := json.Marshal(response)
	if err != nil {
		logger.Error("notify: cannot marshal response", zap.Error(err))
		return nil
	}
	return payload
}

func (c *Consumer) submit(data []byte) error {
	var request SubmitRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return fmt.Errorf("malformed request: %w", err)
	}

	encoded, err := decodeHex(request.Call)
	if err != nil {
		return fmt.Errorf("malformed call: %w", err)
	}

	origin, err := request.Origin(encoded)
	if err != nil {
		logger.Warn("notify: rejected request", zap.String("signer", request.Signer), zap.Error(err))
		return err
	}
	if err := c.submitter.Submit(c.ctx, origin, encoded); err != nil {
		logger.Debug("notify: submitted call failed", zap.Stringer("origin", origin), zap.Error(err))
		return err
	}
	logger.Debug("notify: submitted call applied", zap.Stringer("origin", origin))
	return nil
}
