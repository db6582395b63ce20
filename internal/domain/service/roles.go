package service

import (
	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

// regionalPrefixes are the job-code prefixes used by the second-facility
// payroll scheme. A prefixed code is a first-class synonym of its base code.
var regionalPrefixes = []string{"NB-", "WS-"}

// baseJobCodes maps canonical payroll job codes to scheduling roles.
var baseJobCodes = map[string]domain.Role{
	"SM":  domain.RoleStoreManager,
	"ASM": domain.RoleAssistantManager,
	"TL":  domain.RoleTeamLead,
	"APP": domain.RoleApparelProcessor,
	"PRC": domain.RoleDonationPricer,
	"WPR": domain.RoleDonationPricer, // wares pricer, same station pool
	"DG":  domain.RoleDonorGreeter,
	"CSH": domain.RoleCashier,
}

// jobCodeRoles is the full equivalence table including regional variants.
var jobCodeRoles = func() map[string]domain.Role {
	table := make(map[string]domain.Role, len(baseJobCodes)*(len(regionalPrefixes)+1))
	for code, role := range baseJobCodes {
		table[code] = role
		for _, prefix := range regionalPrefixes {
			table[prefix+code] = role
		}
	}
	return table
}()

// classifyJobCode resolves a raw job code to its canonical role.
func classifyJobCode(code string) domain.Role {
	return jobCodeRoles[code]
}

// rolePools partitions the schedulable roster into coverage pools.
type rolePools struct {
	storeManagers     []*entity.Employee
	assistantManagers []*entity.Employee
	teamLeads         []*entity.Employee
	apparel           []*entity.Employee
	pricers           []*entity.Employee
	greeters          []*entity.Employee
	cashiers          []*entity.Employee
}

// buildRolePools classifies active, visible employees. Inactive or hidden
// employees never enter any pool.
func buildRolePools(employees []*entity.Employee) *rolePools {
	pools := &rolePools{}
	for _, emp := range employees {
		if !emp.IsActive || emp.HideFromSchedule {
			continue
		}
		switch classifyJobCode(emp.JobCode) {
		case domain.RoleStoreManager:
			pools.storeManagers = append(pools.storeManagers, emp)
		case domain.RoleAssistantManager:
			pools.assistantManagers = append(pools.assistantManagers, emp)
		case domain.RoleTeamLead:
			pools.teamLeads = append(pools.teamLeads, emp)
		case domain.RoleApparelProcessor:
			pools.apparel = append(pools.apparel, emp)
		case domain.RoleDonationPricer:
			pools.pricers = append(pools.pricers, emp)
		case domain.RoleDonorGreeter:
			pools.greeters = append(pools.greeters, emp)
		case domain.RoleCashier:
			pools.cashiers = append(pools.cashiers, emp)
		}
	}
	return pools
}

// leadership returns the two senior tiers in coverage-priority order
// followed by team leads.
func (p *rolePools) leadership() []*entity.Employee {
	all := make([]*entity.Employee, 0, len(p.storeManagers)+len(p.assistantManagers)+len(p.teamLeads))
	all = append(all, p.storeManagers...)
	all = append(all, p.assistantManagers...)
	all = append(all, p.teamLeads...)
	return all
}

// seniors returns store and assistant managers, store managers first.
func (p *rolePools) seniors() []*entity.Employee {
	all := make([]*entity.Employee, 0, len(p.storeManagers)+len(p.assistantManagers))
	all = append(all, p.storeManagers...)
	all = append(all, p.assistantManagers...)
	return all
}

// production returns both station pools.
func (p *rolePools) production() []*entity.Employee {
	all := make([]*entity.Employee, 0, len(p.apparel)+len(p.pricers))
	all = append(all, p.apparel...)
	all = append(all, p.pricers...)
	return all
}

// everyone returns all pooled employees across coverage roles.
func (p *rolePools) everyone() []*entity.Employee {
	all := p.leadership()
	all = append(all, p.production()...)
	all = append(all, p.greeters...)
	all = append(all, p.cashiers...)
	return all
}
