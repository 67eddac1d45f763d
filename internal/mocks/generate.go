package mocks

//go:generate mockery --name Transport --srcpkg github.com/aevon-lab/notification-stats/internal/ingestion --output ./ingestion --outpkg ingestionmocks --with-expecter
//go:generate mockery --name Dispatcher --srcpkg github.com/aevon-lab/notification-stats/internal/ingestion --output ./ingestion --outpkg ingestionmocks --with-expecter
