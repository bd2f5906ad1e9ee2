package api

import "github.com/lamco-admin/netkit/internal/planner"

// regulatoryDomain maps the daemon's configured domain name to a
// planner.Domain, defaulting to FCC for an unrecognized value.
func regulatoryDomain(name string) planner.Domain {
	switch name {
	case "ETSI":
		return planner.DomainETSI
	case "MKK":
		return planner.DomainMKK
	case "CN":
		return planner.DomainCN
	case "ROW":
		return planner.DomainROW
	default:
		return planner.DomainFCC
	}
}
