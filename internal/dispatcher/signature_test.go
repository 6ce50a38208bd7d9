package dispatcher_test

import (
	"testing"

	"github.com/chainpay/gateway/internal/dispatcher"
	"github.com/stretchr/testify/assert"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	secret := "4f2d1c9a8b7e6d5c4b3a291817161514131211100f0e0d0c0b0a090807060504"
	payload := []byte(`{"event":"payment.success","payment_id":"p-1"}`)

	signature := dispatcher.Sign(secret, payload)

	assert.True(t, dispatcher.Verify(secret, payload, signature))
}

func TestVerify_TamperedPayload(t *testing.T) {
	secret := "secret"
	payload := []byte(`{"amount":0.1}`)

	signature := dispatcher.Sign(secret, payload)

	assert.False(t, dispatcher.Verify(secret, []byte(`{"amount":1.0}`), signature))
}

func TestVerify_WrongSecret(t *testing.T) {
	payload := []byte(`{"amount":0.1}`)

	signature := dispatcher.Sign("secret-a", payload)

	assert.False(t, dispatcher.Verify("secret-b", payload, signature))
}

func TestVerify_MalformedSignature(t *testing.T) {
	assert.False(t, dispatcher.Verify("secret", []byte(`{}`), "not-hex"))
}

func TestSign_Deterministic(t *testing.T) {
	payload := []byte(`{"payment_id":"p-1"}`)

	assert.Equal(t, dispatcher.Sign("secret", payload), dispatcher.Sign("secret", payload))
}
