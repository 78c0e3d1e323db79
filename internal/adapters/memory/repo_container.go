package memory

import portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FamilyRepo: NewFamilyRepository(),
	}
}
