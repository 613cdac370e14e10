// Package config reads the crank's runtime configuration and keeps the
// processed values in package-level variables for fast repeated access,
// following the same shape as a viper-backed blockchain driver config.
package config

import (
	"crypto/ed25519"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/viper"
)

const (
	MainnetNetwork = "mainnet-beta"
	DevnetNetwork  = "devnet"
	TestNetwork    = "testnet"
)

var (
	ErrorInvalidNetwork = fmt.Errorf("network must be one of 'mainnet-beta', 'devnet' or 'testnet'")

	ErrorNoKeypair          = fmt.Errorf("no crank authority keypair is defined")
	ErrorKeypairConflict    = fmt.Errorf("only one of crank_keypair or crank_keypair_path must be defined")
	ErrorReadingKeypairFile = fmt.Errorf("error reading keypair file")

	ErrorInvalidCrankInterval = fmt.Errorf("invalid time interval for crank process")
	ErrorInvalidPageSize      = fmt.Errorf("page_size must be greater than zero")

	ErrorInvalidProgramID = fmt.Errorf("invalid program id")
	ErrorInvalidVault     = fmt.Errorf("invalid vault identity")
	ErrorInvalidPosition  = fmt.Errorf("invalid honorary position identity")

	ErrorNoCohortManifest = fmt.Errorf("cohort_manifest_path must be set")
)

var (
	TrailingSlashRE = regexp.MustCompile("/+$")
)

var (
	dbURI     string
	network   string
	rpcURL    string

	keypairPath  string
	keypairJSON  string
	crankAuthority ed25519.PrivateKey

	programID solana.PublicKey
	vault     solana.PublicKey
	position  solana.PublicKey

	cohortManifestPath string

	crankInterval time.Duration
	pageSize      int
	maxRetry      int
)

// ReadConfig loads configuration from filePath (and the environment) and
// populates the processed package-level values, exiting the process on any
// validation failure — mirroring the teacher's fail-fast config loader.
func ReadConfig(filePath string) {
	viper.SetConfigFile(filePath)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Failed reading config file: %v\n", err.Error())
	}

	if err := initializeVariables(); err != nil {
		log.Fatalf("Configuration error - %v\n", err.Error())
	}
}

func initializeVariables() error {
	var err error

	dbURI = TrailingSlashRE.ReplaceAllString(viper.GetString("service_db_uri"), "")
	rpcURL = strings.TrimSpace(viper.GetString("rpc_url"))

	network = strings.TrimSpace(strings.ToLower(viper.GetString("network")))
	switch network {
	case MainnetNetwork, DevnetNetwork, TestNetwork:
	default:
		return ErrorInvalidNetwork
	}

	programIDStr := strings.TrimSpace(viper.GetString("program_id"))
	programID, err = solana.PublicKeyFromBase58(programIDStr)
	if err != nil {
		return ErrorInvalidProgramID
	}

	vaultStr := strings.TrimSpace(viper.GetString("vault"))
	vault, err = solana.PublicKeyFromBase58(vaultStr)
	if err != nil {
		return ErrorInvalidVault
	}

	positionStr := strings.TrimSpace(viper.GetString("position"))
	position, err = solana.PublicKeyFromBase58(positionStr)
	if err != nil {
		return ErrorInvalidPosition
	}

	cohortManifestPath = strings.TrimSpace(viper.GetString("cohort_manifest_path"))
	if cohortManifestPath == "" {
		return ErrorNoCohortManifest
	}

	keypairJSON = strings.TrimSpace(viper.GetString("crank_keypair"))
	keypairPath = strings.TrimSpace(viper.GetString("crank_keypair_path"))
	if keypairJSON == "" && keypairPath == "" {
		return ErrorNoKeypair
	}
	if keypairJSON != "" && keypairPath != "" {
		return ErrorKeypairConflict
	}

	if keypairPath != "" {
		keypairJSON, err = readKeypairFile(keypairPath)
		if err != nil {
			return ErrorReadingKeypairFile
		}
	}

	crankAuthority, err = parseKeypair(keypairJSON)
	if err != nil {
		log.Printf("Failed to parse crank authority keypair - %v\n", err.Error())
		return err
	}

	strValue := viper.GetString("crank_interval")
	crankInterval, err = time.ParseDuration(strValue)
	if err != nil {
		return ErrorInvalidCrankInterval
	}

	pageSize = viper.GetInt("page_size")
	if pageSize <= 0 {
		return ErrorInvalidPageSize
	}

	maxRetry = viper.GetInt("max_retry")
	if maxRetry <= 0 {
		maxRetry = 5
	}

	return nil
}

func readKeypairFile(filePath string) (string, error) {
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Failed to read keypair file - %v\n", err.Error())
		return "", err
	}
	return string(fileContent), nil
}

func parseKeypair(raw string) (ed25519.PrivateKey, error) {
	wallet, err := solana.PrivateKeyFromBase58(raw)
	if err != nil {
		return nil, err
	}
	return ed25519.PrivateKey(wallet), nil
}

//-------------------------------------------------------------------
// Processed values

func GetDbURI() string { return dbURI }

func GetRPCURL() string { return rpcURL }

func GetNetwork() string { return network }

func GetProgramID() solana.PublicKey { return programID }

func GetVault() solana.PublicKey { return vault }

func GetPosition() solana.PublicKey { return position }

func GetCohortManifestPath() string { return cohortManifestPath }

func GetCrankInterval() time.Duration { return crankInterval }

func GetPageSize() int { return pageSize }

func GetMaxRetry() int { return maxRetry }

func GetCrankAuthority() ed25519.PrivateKey { return crankAuthority }

//-------------------------------------------------------------------
// Evaluating values

func IsMainnet() bool { return network == MainnetNetwork }
