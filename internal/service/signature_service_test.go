package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	body := `{"event_id":"evt-1","reference":"BH-123","status":"SUCCESS"}`

	signature := svc.Sign("wave-callback-secret", body)
	assert.Regexp(t, `^[0-9a-f]{64}$`, signature)
	assert.True(t, svc.Verify("wave-callback-secret", body, signature))
}

func TestHMACSignatureService_VerifyAcceptsPrefixAndCase(t *testing.T) {
	svc := NewHMACSignatureService()
	signature := svc.Sign("k", "payload")

	assert.True(t, svc.Verify("k", "payload", "sha256="+signature))
	assert.True(t, svc.Verify("k", "payload", strings.ToUpper(signature)))
}

func TestHMACSignatureService_VerifyFails(t *testing.T) {
	svc := NewHMACSignatureService()
	signature := svc.Sign("correct-key", "original payload")

	assert.False(t, svc.Verify("wrong-key", "original payload", signature))
	assert.False(t, svc.Verify("correct-key", "tampered payload", signature))
	assert.False(t, svc.Verify("correct-key", "original payload", "invalidsignature"))
	assert.False(t, svc.Verify("correct-key", "original payload", ""))
}

func TestHMACSignatureService_EmptySecretNeverVerifies(t *testing.T) {
	svc := NewHMACSignatureService()
	signature := svc.Sign("", "payload")
	assert.False(t, svc.Verify("", "payload", signature))
}
