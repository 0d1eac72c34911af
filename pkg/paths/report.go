package paths

// Entry is one resolved directory together with how it was obtained
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Source Source `json:"source" yaml:"source"`
}

// Report lists every resolved directory
type Report struct {
	Entries     []Entry `json:"directories" yaml:"directories"`
	UATPlatform string  `json:"uatPlatform" yaml:"uatPlatform"`
}

// All resolves every directory once
func (r *Resolver) All() Report {
	entry := func(name string, resolve func() (string, Source)) Entry {
		p, src := resolve()
		return Entry{Name: name, Path: p, Source: src}
	}

	return Report{
		Entries: []Entry{
			entry("project", r.project),
			entry("appData", r.appData),
			entry("mods", r.mods),
			entry("logs", r.logs),
			entry("tempDeploy", r.tempDeploy),
			entry("pak", r.pak),
			{Name: "staging", Path: r.Staging(), Source: SourceDerived},
		},
		UATPlatform: r.UATPlatform(),
	}
}
