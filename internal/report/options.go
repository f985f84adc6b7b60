package report

import (
	"github.com/user/netsnap/internal/model"
	"github.com/user/netsnap/internal/util"
)

// OptionsFromConfig derives snapshot options from the application
// configuration. Unrecognized kind or family names are dropped.
func OptionsFromConfig(cfg *util.Config) Options {
	opts := DefaultOptions()
	opts.PerInterface = cfg.PerInterface
	opts.LocalhostTarget = cfg.LocalhostTarget
	opts.InternetTarget = cfg.InternetTarget

	if cfg.ProbeTimeout > 0 {
		opts.ProbeTimeout = cfg.ProbeTimeout
	}
	if len(cfg.ConnectionKinds) > 0 {
		opts.Kinds = ParseKinds(cfg.ConnectionKinds)
	}
	if len(cfg.ConnectionFamilies) > 0 {
		opts.Families = ParseFamilies(cfg.ConnectionFamilies)
	}

	return opts
}

// ParseKinds converts socket kind names to the closed enum, dropping
// anything unrecognized.
func ParseKinds(names []string) []model.SocketType {
	kinds := make([]model.SocketType, 0, len(names))
	for _, n := range names {
		if k := model.ParseSocketType(n); k != model.SocketUnknown {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// ParseFamilies converts address family names to the closed enum,
// dropping anything unrecognized.
func ParseFamilies(names []string) []model.Family {
	families := make([]model.Family, 0, len(names))
	for _, n := range names {
		if f := model.ParseFamily(n); f != model.FamilyUnknown && f != model.FamilyLink {
			families = append(families, f)
		}
	}
	return families
}
