package rules

// Defaults returns the built-in detection rule set. IDs follow the gitleaks
// naming convention. Fixed-prefix token formats carry no entropy gate since
// the prefix alone is deterministic; generic rules pair a keyword pre-filter
// with an entropy threshold to keep noise down.
func Defaults() []Rule {
	return []Rule{
		{
			ID:          "aws-access-key-id",
			Description: "AWS Access Key ID",
			Pattern:     `\b(?:A3T[A-Z0-9]|AKIA|ASIA|ABIA|ACCA)[A-Z0-9]{16}\b`,
		},
		{
			ID:          "aws-secret-access-key",
			Description: "AWS Secret Access Key",
			Pattern:     `aws[_\-\. ]{0,10}(?:secret|private)?[_\-\. ]{0,10}(?:access)?[_\-\. ]{0,10}key[^\n]{0,10}[=:]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
			Entropy:     Threshold(3.5),
			Keywords:    []string{"aws"},
		},
		{
			ID:          "github-pat",
			Description: "GitHub Personal Access Token",
			Pattern:     `ghp_[0-9A-Za-z]{36}`,
		},
		{
			ID:          "github-fine-grained-pat",
			Description: "GitHub Fine-Grained Personal Access Token",
			Pattern:     `github_pat_[0-9A-Za-z_]{82}`,
		},
		{
			ID:          "github-app-token",
			Description: "GitHub App Token",
			Pattern:     `(?:ghu|ghs)_[0-9A-Za-z]{36}`,
		},
		{
			ID:          "gitlab-pat",
			Description: "GitLab Personal Access Token",
			Pattern:     `glpat-[0-9A-Za-z\-_]{20}`,
		},
		{
			ID:          "slack-token",
			Description: "Slack Token",
			Pattern:     `xox[baprs]-[0-9A-Za-z\-]{10,48}`,
			Keywords:    []string{"xox"},
		},
		{
			ID:          "slack-webhook",
			Description: "Slack Webhook URL",
			Pattern:     `https://hooks\.slack\.com/services/T[0-9A-Z]{8,}/B[0-9A-Z]{8,}/[0-9A-Za-z]{24}`,
			Keywords:    []string{"hooks.slack.com"},
		},
		{
			ID:          "google-api-key",
			Description: "Google API Key",
			Pattern:     `AIza[0-9A-Za-z\-_]{35}`,
		},
		{
			ID:          "stripe-secret-key",
			Description: "Stripe Secret Key",
			Pattern:     `(?:sk|rk)_(?:live|test)_[0-9A-Za-z]{24,99}`,
			Keywords:    []string{"sk_", "rk_"},
		},
		{
			ID:          "twilio-api-key",
			Description: "Twilio API Key",
			Pattern:     `SK[0-9a-f]{32}`,
			Entropy:     Threshold(3.0),
			Keywords:    []string{"twilio"},
		},
		{
			ID:          "sendgrid-api-key",
			Description: "SendGrid API Key",
			Pattern:     `SG\.[0-9A-Za-z\-_]{22}\.[0-9A-Za-z\-_]{43}`,
		},
		{
			ID:          "npm-access-token",
			Description: "npm Access Token",
			Pattern:     `npm_[0-9A-Za-z]{36}`,
		},
		{
			ID:          "openai-api-key",
			Description: "OpenAI API Key",
			Pattern:     `sk-[A-Za-z0-9]{20}T3BlbkFJ[A-Za-z0-9]{20}`,
		},
		{
			ID:          "private-key",
			Description: "Private Key Material",
			Pattern:     `-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`,
			Keywords:    []string{"private key"},
		},
		{
			ID:          "jwt",
			Description: "JSON Web Token",
			Pattern:     `eyJ[0-9A-Za-z\-_=]{10,}\.[0-9A-Za-z\-_=]{10,}\.[0-9A-Za-z\-_.+/=]{10,}`,
			Entropy:     Threshold(3.5),
			Keywords:    []string{"eyj"},
		},
		{
			ID:          "password-in-url",
			Description: "Password embedded in URL",
			Pattern:     `[a-zA-Z][a-zA-Z0-9+.\-]+://[^/\s:@]+:([^/\s:@]{3,})@[^\s]+`,
			Keywords:    []string{"://"},
		},
		{
			ID:          "generic-api-key",
			Description: "Generic API key or secret assignment",
			Pattern:     `(?:api[_\-]?key|api[_\-]?secret|access[_\-]?token|secret[_\-]?key|auth[_\-]?token)[^\n]{0,10}[=:]\s*["']?([0-9A-Za-z\-_/+=]{16,64})["']?`,
			Entropy:     Threshold(3.0),
			Keywords:    []string{"api", "secret", "token"},
		},
	}
}

// DefaultExclusions returns path patterns for trees that are overwhelmingly
// noise: dependency dirs, VCS internals, build output, lockfiles, minified
// assets.
func DefaultExclusions() []string {
	return []string{
		`node_modules/`,
		`vendor/`,
		`\.git/`,
		`\.venv/`,
		`venv/`,
		`__pycache__/`,
		`dist/`,
		`build/`,
		`target/`,
		`coverage/`,
		`\.min\.js$`,
		`\.map$`,
		`\.lock$`,
		`package-lock\.json$`,
		`\.sum$`,
	}
}
