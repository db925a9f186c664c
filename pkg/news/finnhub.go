package news

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(limit int) ([]Article, error) {
	res, _, err := c.client.MarketNews(context.Background()).Category("general").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub market news: %w", err)
	}

	var articles []Article

	for _, item := range res {
		a := Article{
			Source: c.Name(),
		}

		if item.Id != nil {
			a.ExternalID = strconv.FormatInt(*item.Id, 10)
		}

		if item.Headline != nil {
			a.Headline = *item.Headline
		}

		if item.Summary != nil {
			a.Detail = *item.Summary
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}

		if item.Source != nil {
			a.Publisher = *item.Source
		}

		if item.Related != nil && *item.Related != "" {
			a.Symbols = strings.Split(*item.Related, ",")
		} else {
			a.Symbols = []string{}
		}

		articles = append(articles, a)

		if limit > 0 && len(articles) >= limit {
			break
		}
	}

	return articles, nil
}

// Quote is a real-time stock quote for the dashboard stock monitor.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Current       float64 `json:"current"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previous_close"`
}

func (c *FinnhubClient) Quote(ctx context.Context, symbol string) (*Quote, error) {
	res, _, err := c.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub quote %s: %w", symbol, err)
	}

	return &Quote{
		Symbol:        symbol,
		Current:       float64(res.GetC()),
		Change:        float64(res.GetD()),
		PercentChange: float64(res.GetDp()),
		High:          float64(res.GetH()),
		Low:           float64(res.GetL()),
		Open:          float64(res.GetO()),
		PreviousClose: float64(res.GetPc()),
	}, nil
}
