package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"restman/internal/domain"
)

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	Endpoint   string
	ReturnURL  string
}

// VNPay builds redirect URLs for the VNPay hosted payment page. The
// secure hash is HMAC-SHA512 over the alphabetically sorted,
// form-encoded parameters, excluding the hash itself.
type VNPay struct {
	config VNPayConfig
	now    func() time.Time
}

func NewVNPay(config VNPayConfig) *VNPay {
	return &VNPay{config: config, now: time.Now}
}

func (v *VNPay) PaymentURL(ctx context.Context, order *domain.Order) (string, error) {
	if order.TotalAmount <= 0 {
		return "", fmt.Errorf("order %d has no amount to pay", order.ID)
	}

	params := url.Values{}
	params.Set("vnp_Version", "2.1.0")
	params.Set("vnp_Command", "pay")
	params.Set("vnp_TmnCode", v.config.TmnCode)
	// VNPay expects the amount multiplied by 100.
	params.Set("vnp_Amount", strconv.FormatInt(order.TotalAmount*100, 10))
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_TxnRef", strconv.Itoa(order.ID))
	params.Set("vnp_OrderInfo", fmt.Sprintf("Thanh toan don hang %d", order.ID))
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Locale", "vn")
	params.Set("vnp_ReturnUrl", v.config.ReturnURL)
	params.Set("vnp_CreateDate", v.now().Format("20060102150405"))

	// Encode sorts keys and form-encodes values, which is the canonical
	// string the provider verifies against.
	query := params.Encode()
	mac := hmac.New(sha512.New, []byte(v.config.HashSecret))
	mac.Write([]byte(query))
	secureHash := hex.EncodeToString(mac.Sum(nil))

	return v.config.Endpoint + "?" + query + "&vnp_SecureHash=" + secureHash, nil
}
