package cmd

import (
	"database/sql"
	"log"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/abkGami/star-damm-honorary-fee/domain/config"
	"github.com/abkGami/star-damm-honorary-fee/infrastructure/dbhandler"
	"github.com/abkGami/star-damm-honorary-fee/interface/amm"
	"github.com/abkGami/star-damm-honorary-fee/interface/exporter"
	"github.com/abkGami/star-damm-honorary-fee/interface/repository"
	"github.com/abkGami/star-damm-honorary-fee/interface/token"
	"github.com/abkGami/star-damm-honorary-fee/interface/vesting"
	"github.com/abkGami/star-damm-honorary-fee/usecase"
)

func defaultDependencyInject() {
	var err error
	dbPool, err = sql.Open("postgres", config.GetDbURI())
	if err != nil {
		log.Fatal(err)
	}
	dbPool.SetMaxOpenConns(20)
	dbPool.SetMaxIdleConns(5)
	dbPool.SetConnMaxIdleTime(1 * time.Minute)
	dbPool.SetConnMaxLifetime(4 * time.Hour)

	dbHandler := dbhandler.DBHandler{DB: dbPool}

	rpcClient = rpc.New(config.GetRPCURL())

	policyRepository = repository.NewPolicyRepository(dbHandler)
	progressRepository = repository.NewProgressRepository(dbHandler)
	eventRepository = repository.NewEventRepository(dbHandler)

	exporter.Init()

	emitter := usecase.NewEventEmitter(eventRepository)

	ammClient := amm.NewClient(rpcClient, config.GetProgramID(), solana.PublicKey{})
	vestingClient := vesting.NewClient(rpcClient)
	lockedAmountInteractor := usecase.NewLockedAmountInteractor(vestingClient)
	windowController := usecase.NewWindowController(ammClient, lockedAmountInteractor)

	crankPrivateKey := solana.PrivateKey(config.GetCrankAuthority())
	tokenClient := token.NewClient(token.NewRPCSender(rpcClient), crankPrivateKey)

	distributionInteractor = usecase.NewDistributionInteractor(
		config.GetProgramID(), policyRepository, progressRepository,
		windowController, lockedAmountInteractor, tokenClient, emitter,
	)
	policyInteractor = usecase.NewPolicyInteractor(config.GetProgramID(), policyRepository, progressRepository, emitter)
}

var dbPool *sql.DB
var rpcClient *rpc.Client
var policyRepository *repository.PolicyRepository
var progressRepository *repository.ProgressRepository
var eventRepository *repository.EventRepository
var distributionInteractor *usecase.DistributionInteractor
var policyInteractor *usecase.PolicyInteractor
