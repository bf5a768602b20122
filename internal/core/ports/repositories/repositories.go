package repositories

// RepositoryProvider bundles all repository implementations for dependency
// injection into the service container.
type RepositoryProvider struct {
	Journal   JournalRepositoryFacade
	Request   RequestRepositoryFacade
	Proposal  ProposalRepositoryFacade
	Directory DirectoryReader
}
