package masking

// builtinPatterns is the redaction set every Masker starts from. Patterns
// target credential material an agent plausibly pulls through its tools:
// key-value assignments in config or tool output, PEM blocks, and the bare
// token formats of the providers praxis itself talks to.
var builtinPatterns = []Pattern{
	{
		Name:        "api_key",
		Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{16,})["']?`,
		Replacement: `"api_key": "__MASKED_API_KEY__"`,
	},
	{
		Name:        "password",
		Pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
		Replacement: `"password": "__MASKED_PASSWORD__"`,
	},
	{
		Name:        "token",
		Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
		Replacement: `"token": "__MASKED_TOKEN__"`,
	},
	{
		Name:        "secret_key",
		Pattern:     `(?i)(?:secret|private)[_-]?key["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.\/+=]{16,})["']?`,
		Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
	},
	{
		Name:        "certificate",
		Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
		Replacement: `__MASKED_CERTIFICATE__`,
	},
	{
		Name:        "ssh_key",
		Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
		Replacement: `__MASKED_SSH_KEY__`,
	},
	{
		Name:        "authorization_header",
		Pattern:     `(?i)authorization:\s*(?:bearer|basic|token)\s+[A-Za-z0-9_\-\.=+/]{8,}`,
		Replacement: `Authorization: __MASKED_CREDENTIAL__`,
	},
	{
		// AWS access key IDs have a fixed shape; no key context needed.
		Name:        "aws_access_key",
		Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
		Replacement: `__MASKED_AWS_KEY__`,
	},
	{
		// GitHub fine-grained and classic tokens (ghp_, gho_, ghu_, ghs_, ghr_).
		Name:        "github_token",
		Pattern:     `\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`,
		Replacement: `__MASKED_GITHUB_TOKEN__`,
	},
	{
		// Model provider keys (sk-..., sk-ant-...): the one credential class
		// guaranteed to be in scope for an agent runtime.
		Name:        "provider_key",
		Pattern:     `\bsk-[A-Za-z0-9_\-]{20,}\b`,
		Replacement: `__MASKED_PROVIDER_KEY__`,
	},
}
