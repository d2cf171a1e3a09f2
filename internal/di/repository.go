package di

import (
	"go.uber.org/fx"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository/impl"
)

// RepositoryModule provides repository dependencies.
// Repositories delegate to the DAO layer for database operations.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		provideAdminRepository,
		provideDriverRepository,
		provideUserRepository,
		provideBinRepository,
		provideComplaintRepository,
		provideWorkRepository,
	),
)

func provideAdminRepository(adminDAO dao.AdminDAO) repository.AdminRepository {
	return impl.NewAdminRepository(adminDAO)
}

func provideDriverRepository(driverDAO dao.DriverDAO) repository.DriverRepository {
	return impl.NewDriverRepository(driverDAO)
}

func provideUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return impl.NewUserRepository(userDAO)
}

func provideBinRepository(binDAO dao.BinDAO) repository.BinRepository {
	return impl.NewBinRepository(binDAO)
}

func provideComplaintRepository(complaintDAO dao.ComplaintDAO) repository.ComplaintRepository {
	return impl.NewComplaintRepository(complaintDAO)
}

func provideWorkRepository(workDAO dao.WorkDAO) repository.WorkRepository {
	return impl.NewWorkRepository(workDAO)
}
