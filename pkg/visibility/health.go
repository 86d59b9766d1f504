package visibility

import "context"

type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func (c *VisibilityClient) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.get(ctx, "health", "/health", &status); err != nil {
		return nil, err
	}
	return &status, nil
}
