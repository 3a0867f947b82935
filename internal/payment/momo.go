package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"restman/internal/domain"
)

// HTTPClient lets tests substitute the provider call.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type MoMoConfig struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
	Endpoint    string
	RedirectURL string
	IPNURL      string
}

// MoMo creates a payment with the provider's create API and returns the
// payUrl the customer is redirected to.
type MoMo struct {
	config MoMoConfig
	client HTTPClient
}

func NewMoMo(config MoMoConfig, client HTTPClient) *MoMo {
	return &MoMo{config: config, client: client}
}

type momoRequest struct {
	PartnerCode string `json:"partnerCode"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	RequestType string `json:"requestType"`
	ExtraData   string `json:"extraData"`
	Lang        string `json:"lang"`
	Signature   string `json:"signature"`
}

type momoResponse struct {
	PayURL     string `json:"payUrl"`
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
}

func (m *MoMo) PaymentURL(ctx context.Context, order *domain.Order) (string, error) {
	orderID := strconv.Itoa(order.ID)
	orderInfo := "Thanh toan don hang " + orderID

	// The raw signature string follows the provider's fixed field order.
	raw := fmt.Sprintf(
		"accessKey=%s&amount=%d&extraData=&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=captureWallet",
		m.config.AccessKey, order.TotalAmount, m.config.IPNURL, orderID, orderInfo,
		m.config.PartnerCode, m.config.RedirectURL, orderID)

	mac := hmac.New(sha256.New, []byte(m.config.SecretKey))
	mac.Write([]byte(raw))

	payload, err := json.Marshal(momoRequest{
		PartnerCode: m.config.PartnerCode,
		RequestID:   orderID,
		Amount:      order.TotalAmount,
		OrderID:     orderID,
		OrderInfo:   orderInfo,
		RedirectURL: m.config.RedirectURL,
		IPNURL:      m.config.IPNURL,
		RequestType: "captureWallet",
		Lang:        "vi",
		Signature:   hex.EncodeToString(mac.Sum(nil)),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("momo request failed: %w", err)
	}
	defer resp.Body.Close()

	var result momoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("momo response undecodable: %w", err)
	}
	if result.PayURL == "" {
		return "", fmt.Errorf("momo rejected payment: %s", result.Message)
	}
	return result.PayURL, nil
}
