package config

// Config holds the Mission Control settings.
// Everything here is optional: with no config file at all the tool runs
// against ~/.kube/config and the standard Kognitos context patterns.
type Config struct {
	// KubeconfigPath points at the kubeconfig whose contexts we browse and
	// switch. Defaults to ~/.kube/config.
	KubeconfigPath string `yaml:"kubeconfigPath,omitempty" json:"kubeconfigPath"`

	// DefaultNamespace is used when no namespace flag is given and no URL was
	// resolved. The Kognitos workloads we care about live in "bdk" by default.
	DefaultNamespace string `yaml:"defaultNamespace,omitempty" json:"defaultNamespace"`

	// GitopsPath is the checkout containing scripts/setup-access.sh, which the
	// login command invokes. Empty disables login.
	GitopsPath string `yaml:"gitopsPath,omitempty" json:"gitopsPath"`

	// Timeout is the per-call cluster API timeout in seconds.
	Timeout int `yaml:"timeout,omitempty" json:"timeout"`

	// EnvContextPatterns maps an environment name (local, dev, stg, prod) to
	// the substring that identifies its kube contexts, e.g. dev -> "kognitos-dev".
	EnvContextPatterns map[string]string `yaml:"envContextPatterns,omitempty" json:"envContextPatterns"`
}
