package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	config "github.com/karim9155/Tutlayt/configs"
)

type ExchangeRateResponse struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

var (
	ratesCache    map[string]float64
	cacheMutex    sync.RWMutex
	lastFetchTime time.Time
)

// FetchRates returns TND-based conversion rates, refreshed at most every
// six hours.
func FetchRates() (map[string]float64, error) {
	cacheMutex.RLock()
	if time.Since(lastFetchTime) < 6*time.Hour && ratesCache != nil {
		cacheMutex.RUnlock()
		return ratesCache, nil
	}
	cacheMutex.RUnlock()

	log.Println("Fetching fresh exchange rates from API...")
	apiKey := config.Config("EXCHANGE_RATE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("exchange rate API key not configured")
	}

	url := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/TND", apiKey)
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var data ExchangeRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	if data.Result != "success" {
		return nil, fmt.Errorf("currency API returned an error")
	}

	cacheMutex.Lock()
	ratesCache = data.ConversionRates
	lastFetchTime = time.Now()
	cacheMutex.Unlock()
	log.Println("Successfully updated currency exchange rate cache.")

	return ratesCache, nil
}

// ConvertToTND converts a foreign-currency amount to Tunisian dinar using
// the cached TND-based rate table.
func ConvertToTND(amount float64, currency string) (float64, error) {
	if currency == "TND" {
		return amount, nil
	}

	rates, err := FetchRates()
	if err != nil {
		return 0, err
	}

	rate, ok := rates[currency]
	if !ok || rate == 0 {
		return 0, fmt.Errorf("%s exchange rate not found in API response", currency)
	}

	return amount / rate, nil
}
