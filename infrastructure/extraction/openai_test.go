package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMentions(t *testing.T) {
	brandNames := []string{"Salesforce", "HubSpot", "Zoho CRM"}

	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "exact match",
			response: "Salesforce is the market leader.",
			want:     []string{"Salesforce"},
		},
		{
			name:     "case insensitive",
			response: "Both SALESFORCE and hubspot come up often.",
			want:     []string{"Salesforce", "HubSpot"},
		},
		{
			name:     "order follows tracked list, not the text",
			response: "Zoho CRM is cheaper than HubSpot or Salesforce.",
			want:     []string{"Salesforce", "HubSpot", "Zoho CRM"},
		},
		{
			name:     "multi word name",
			response: "I would pick zoho crm for a small team.",
			want:     []string{"Zoho CRM"},
		},
		{
			name:     "no mentions",
			response: "Try Pipedrive instead.",
			want:     []string{},
		},
		{
			name:     "empty response",
			response: "",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMentions(tt.response, brandNames))
		})
	}
}

func TestDetectMentions_NoTrackedBrands(t *testing.T) {
	assert.Empty(t, DetectMentions("Salesforce everywhere.", nil))
}
