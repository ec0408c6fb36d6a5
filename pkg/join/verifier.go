package join

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/exp/slog"
)

const (
	totpIssuer = "PureVote"
	totpPeriod = 300
	totpSkew   = 1
)

// CodeVerifier checks an entered verification code against the secret the
// code was generated from.
type CodeVerifier interface {
	Verify(totpSecret, passcode string) (bool, error)
}

// TotpVerifier validates codes as time-based one-time passcodes.
type TotpVerifier struct{}

func (TotpVerifier) Verify(totpSecret, passcode string) (bool, error) {
	valid, err := totp.ValidateCustom(passcode, totpSecret, time.Now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		slog.Error("Failed to validate totp passcode", "error", err)
		return false, err
	}
	return valid, nil
}

// AcceptAllVerifier accepts any complete code. Used by the demo command,
// where no real inbox exists to read the code from.
type AcceptAllVerifier struct{}

func (AcceptAllVerifier) Verify(totpSecret, passcode string) (bool, error) {
	return true, nil
}

func generateTotpSecret(accountName string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: accountName,
	})
	if err != nil {
		slog.Error("Failed to generate totp secret", "accountName", accountName, "error", err)
		return "", err
	}
	return key.Secret(), nil
}

func generatePasscode(totpSecret string) (string, error) {
	code, err := totp.GenerateCodeCustom(totpSecret, time.Now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		slog.Error("Failed to generate verification passcode", "error", err)
		return "", err
	}
	return code, nil
}
