package rates

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/dpavliga/lifeledger/internal/config"
)

// Client fetches the ECB daily reference rates. The rates are display-only:
// nothing in the ledger arithmetic ever converts currency.
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new rates client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.RatesURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch downloads the daily rates document
func (c *Client) fetch() ([]byte, error) {
	req, err := http.NewRequest("GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("ECB XML response: %s", string(body))

	return body, nil
}

// ParseRates extracts the currency→rate table from the ECB daily XML. Every
// rate is quoted against the euro, so EUR itself is pinned at 1.
func ParseRates(rawBody []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	cubes := doc.FindElements("//Cube/Cube/Cube")
	if len(cubes) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}

	table := map[string]float64{"EUR": 1}
	for _, cube := range cubes {
		currency := cube.SelectAttrValue("currency", "")
		rateAttr := cube.SelectAttrValue("rate", "")
		if currency == "" || rateAttr == "" {
			continue
		}
		rate, err := strconv.ParseFloat(rateAttr, 64)
		if err != nil || rate <= 0 {
			continue
		}
		table[strings.ToUpper(currency)] = rate
	}

	return table, nil
}

// Rate returns how many units of quote one unit of base buys, crossing
// through the euro.
func (c *Client) Rate(base, quote string) (float64, error) {
	body, err := c.fetch()
	if err != nil {
		return 0, err
	}

	table, err := ParseRates(body)
	if err != nil {
		return 0, err
	}

	rate, err := CrossRate(table, base, quote)
	if err != nil {
		return 0, err
	}

	c.log.Infof("Retrieved rate %s/%s: %.4f", base, quote, rate)
	return rate, nil
}

// CrossRate derives a base→quote rate from a euro-quoted table.
func CrossRate(table map[string]float64, base, quote string) (float64, error) {
	baseRate, ok := table[strings.ToUpper(strings.TrimSpace(base))]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", base)
	}
	quoteRate, ok := table[strings.ToUpper(strings.TrimSpace(quote))]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", quote)
	}
	return quoteRate / baseRate, nil
}
