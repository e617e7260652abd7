package price

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	API_TIMEOUT = time.Second * 10
	PRICE_TTL   = time.Minute
)

type CoinmarketcapResponse struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
	Data map[string]struct {
		Quote struct {
			USD struct {
				Price float64 `json:"price"`
			} `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}

type CoinmarketcapAPI struct {
	url    string
	apiKey string

	HTTPClient *http.Client
	prices     *ttlcache.Cache[string, float64]
}

func NewCoinmarketcapAPI(url string, apiKey string) *CoinmarketcapAPI {
	prices := ttlcache.New(
		ttlcache.WithTTL[string, float64](PRICE_TTL),
	)
	go prices.Start()

	return &CoinmarketcapAPI{
		url:        url,
		apiKey:     apiKey,
		HTTPClient: &http.Client{Timeout: API_TIMEOUT},
		prices:     prices,
	}
}

// TokenPrice returns the USD price for the symbol. Prices are cached for
// a minute, confirmation bucketing tolerates slightly stale values.
func (c *CoinmarketcapAPI) TokenPrice(symbol string) (float64, error) {
	cached := c.prices.Get(symbol)
	if cached != nil {
		return cached.Value(), nil
	}

	url := fmt.Sprintf("%s/v1/cryptocurrency/quotes/latest?symbol=%s", c.url, symbol)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accepts", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}
	var cmcResponse CoinmarketcapResponse
	err = json.Unmarshal(response, &cmcResponse)
	if err != nil {
		return 0, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if cmcResponse.Status.ErrorCode != 0 {
		return 0, fmt.Errorf("API Error: %d - %s", cmcResponse.Status.ErrorCode, cmcResponse.Status.ErrorMessage)
	}

	data, ok := cmcResponse.Data[symbol]
	if !ok {
		return 0, fmt.Errorf("no price for symbol %s", symbol)
	}

	c.prices.Set(symbol, data.Quote.USD.Price, ttlcache.DefaultTTL)
	return data.Quote.USD.Price, nil
}
