package lightning

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

// LNURLBackend talks to an LNURL-pay endpoint for invoices and an
// LNURL-verify endpoint for settlement checks. Verification is a plain GET,
// so calling it twice cannot create or mutate anything on the node side.
type LNURLBackend struct {
	invoiceURL string
	verifyURL  string
	client     *http.Client
	logger     logger.Logger
}

var _ Backend = (*LNURLBackend)(nil)

func NewLNURLBackend(invoiceURL, verifyURL string, timeout time.Duration, log logger.Logger) (*LNURLBackend, error) {
	if invoiceURL == "" || verifyURL == "" {
		return nil, errors.InvalidArg("lnurl mode requires invoiceurl and verifyurl")
	}

	return &LNURLBackend{
		invoiceURL: strings.TrimRight(invoiceURL, "/"),
		verifyURL:  strings.TrimRight(verifyURL, "/"),
		client:     &http.Client{Timeout: timeout},
		logger:     log,
	}, nil
}

type payCallbackResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
	PR     string `json:"pr"`
	Verify string `json:"verify"`
}

type verifyResponse struct {
	Status  string `json:"status"`
	Reason  string `json:"reason"`
	Settled bool   `json:"settled"`
	PR      string `json:"pr"`
}

func (b *LNURLBackend) CreateInvoice(ctx context.Context, amountSats uint64, memo string) (string, error) {
	q := url.Values{}
	// LNURL-pay amounts are millisatoshis.
	q.Set("amount", fmt.Sprintf("%d", amountSats*1000))
	if memo != "" {
		q.Set("comment", memo)
	}

	var resp payCallbackResponse
	if err := b.getJSON(ctx, b.invoiceURL+"?"+q.Encode(), &resp); err != nil {
		return "", err
	}
	if strings.EqualFold(resp.Status, "ERROR") {
		return "", errors.Unavailable("invoice request rejected: " + resp.Reason)
	}
	if resp.Verify == "" {
		return "", errors.Unavailable("invoice response missing verify url")
	}

	// The verify URL ends with the payment hash, which becomes our opaque
	// payment reference.
	u, err := url.Parse(resp.Verify)
	if err != nil {
		return "", errors.Wrap(errors.CodeUnavailable, "malformed verify url", err)
	}
	return path.Base(u.Path), nil
}

func (b *LNURLBackend) CheckSettlement(ctx context.Context, paymentRef string) (SettlementStatus, error) {
	if paymentRef == "" {
		return "", errors.ErrInvalidPaymentRef
	}

	var resp verifyResponse
	if err := b.getJSON(ctx, b.verifyURL+"/"+url.PathEscape(paymentRef), &resp); err != nil {
		return "", err
	}

	if strings.EqualFold(resp.Status, "ERROR") {
		return StatusNotFound, nil
	}
	if resp.Settled {
		return StatusSettled, nil
	}
	return StatusPending, nil
}

func (b *LNURLBackend) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "build request", err)
	}

	res, err := b.client.Do(req)
	if err != nil {
		b.logger.Warn("lightning backend unreachable", "err", err)
		return errors.Wrap(errors.CodeUnavailable, "lightning backend unreachable", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.Unavailable(fmt.Sprintf("lightning backend returned %d", res.StatusCode))
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(errors.CodeUnavailable, "decode backend response", err)
	}
	return nil
}
