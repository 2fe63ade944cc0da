package gemini

import "time"

func (c *Client) OnRetry(fn func(err error, delay time.Duration)) {
	c.onRetry = fn
}
