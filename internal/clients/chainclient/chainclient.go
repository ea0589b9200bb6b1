package chainclient

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/evermarks/emark-staking-service/internal/config"
)

type contractBinding struct {
	addr common.Address
	abi  abi.ABI
}

type ChainClient struct {
	cfg     *config.ChainConfig
	eth     *ethclient.Client
	chainID *big.Int
	privKey *ecdsa.PrivateKey
	account common.Address
	token   contractBinding
	staking contractBinding
	voting  contractBinding
}

func NewChainClient(ctx context.Context, cfg *config.ChainConfig) (ChainInterface, error) {
	eth, err := ethclient.DialContext(ctx, cfg.RPCAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain rpc %s: %w", cfg.RPCAddr, err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}

	token, err := newBinding(cfg.EmarkTokenAddress, emarkTokenABI)
	if err != nil {
		return nil, fmt.Errorf("failed to bind EMARK token contract: %w", err)
	}
	staking, err := newBinding(cfg.StakingContractAddress, stakingContractABI)
	if err != nil {
		return nil, fmt.Errorf("failed to bind staking contract: %w", err)
	}
	voting, err := newBinding(cfg.VotingContractAddress, votingContractABI)
	if err != nil {
		return nil, fmt.Errorf("failed to bind voting contract: %w", err)
	}

	client := &ChainClient{
		cfg:     cfg,
		eth:     eth,
		chainID: chainID,
		token:   token,
		staking: staking,
		voting:  voting,
	}

	if cfg.WalletPrivateKey != "" {
		privKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.WalletPrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse wallet private key: %w", err)
		}
		client.privKey = privKey
		client.account = crypto.PubkeyToAddress(privKey.PublicKey)
	}

	return client, nil
}

func newBinding(address, abiJSON string) (contractBinding, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return contractBinding{}, err
	}
	return contractBinding{
		addr: common.HexToAddress(address),
		abi:  parsed,
	}, nil
}

func (c *ChainClient) ConnectedAccount() string {
	if c.privKey == nil {
		return ""
	}
	return c.account.Hex()
}

func (c *ChainClient) BalanceOf(ctx context.Context, account string) (sdkmath.Int, error) {
	return c.uintCall(ctx, c.token, "balanceOf", common.HexToAddress(account))
}

func (c *ChainClient) StakedBalanceOf(ctx context.Context, account string) (sdkmath.Int, error) {
	return c.uintCall(ctx, c.staking, "balanceOf", common.HexToAddress(account))
}

// Allowance reads how much EMARK the staking contract may still pull from
// the owner's liquid balance.
func (c *ChainClient) Allowance(ctx context.Context, owner string) (sdkmath.Int, error) {
	return c.uintCall(ctx, c.token, "allowance", common.HexToAddress(owner), c.staking.addr)
}

func (c *ChainClient) GetUnbondingInfo(ctx context.Context, account string) (*UnbondingInfo, error) {
	out, err := c.call(ctx, c.staking, "getUnbondingInfo", common.HexToAddress(account))
	if err != nil {
		return nil, fmt.Errorf("failed to get unbonding info: %w", err)
	}
	if len(out) != 3 {
		return nil, fmt.Errorf("unexpected unbonding info shape: %d outputs", len(out))
	}

	amount, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected unbonding amount type %T", out[0])
	}
	releaseTime, ok := out[1].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected unbonding release time type %T", out[1])
	}
	canClaim, ok := out[2].(bool)
	if !ok {
		return nil, fmt.Errorf("unexpected unbonding claim flag type %T", out[2])
	}

	return &UnbondingInfo{
		Amount:      sdkmath.NewIntFromBigInt(amount),
		ReleaseTime: time.Unix(releaseTime.Int64(), 0).UTC(),
		CanClaim:    canClaim,
	}, nil
}

func (c *ChainClient) GetProtocolParams(ctx context.Context) (*ProtocolParams, error) {
	period, err := c.uintCall(ctx, c.staking, "UNBONDING_PERIOD")
	if err != nil {
		return nil, fmt.Errorf("failed to get unbonding period: %w", err)
	}
	minStake, err := c.uintCall(ctx, c.staking, "minStakeAmount")
	if err != nil {
		return nil, fmt.Errorf("failed to get min stake amount: %w", err)
	}
	maxStake, err := c.uintCall(ctx, c.staking, "maxStakeAmount")
	if err != nil {
		return nil, fmt.Errorf("failed to get max stake amount: %w", err)
	}

	return &ProtocolParams{
		UnbondingPeriodSeconds: period.Int64(),
		MinStakeAmount:         minStake,
		MaxStakeAmount:         maxStake,
	}, nil
}

func (c *ChainClient) GetVotesInCurrentCycle(ctx context.Context, account string) (sdkmath.Int, error) {
	return c.uintCall(ctx, c.voting, "getTotalVotesInCurrentCycle", common.HexToAddress(account))
}

func (c *ChainClient) GetVotingPower(ctx context.Context, account string) (sdkmath.Int, error) {
	return c.uintCall(ctx, c.voting, "getVotingPower", common.HexToAddress(account))
}

func (c *ChainClient) GetRemainingVotingPower(ctx context.Context, account string) (sdkmath.Int, error) {
	return c.uintCall(ctx, c.voting, "getRemainingVotingPower", common.HexToAddress(account))
}

func (c *ChainClient) Approve(ctx context.Context, amount sdkmath.Int) (string, error) {
	return c.sendTx(ctx, c.token, "approve", c.staking.addr, amount.BigInt())
}

func (c *ChainClient) Stake(ctx context.Context, amount sdkmath.Int) (string, error) {
	return c.sendTx(ctx, c.staking, "stake", amount.BigInt())
}

func (c *ChainClient) StartUnbonding(ctx context.Context, amount sdkmath.Int) (string, error) {
	return c.sendTx(ctx, c.staking, "startUnbonding", amount.BigInt())
}

func (c *ChainClient) Withdraw(ctx context.Context) (string, error) {
	return c.sendTx(ctx, c.staking, "withdraw")
}

func (c *ChainClient) CancelUnbonding(ctx context.Context) (string, error) {
	return c.sendTx(ctx, c.staking, "cancelUnbonding")
}

func (c *ChainClient) TransactionStatus(ctx context.Context, txHash string) (TxStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	receipt, err := c.eth.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return TxPending, nil
		}
		return TxPending, fmt.Errorf("failed to fetch receipt for %s: %w", txHash, err)
	}

	if receipt.Status == ethtypes.ReceiptStatusSuccessful {
		return TxConfirmed, nil
	}
	return TxFailed, nil
}

// call packs a read-only method, executes it with retries and unpacks the
// raw outputs.
func (c *ChainClient) call(ctx context.Context, b contractBinding, method string, args ...interface{}) ([]interface{}, error) {
	data, err := b.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	callForOutput := func() ([]byte, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
		return c.eth.CallContract(callCtx, ethereum.CallMsg{To: &b.addr, Data: data}, nil)
	}

	out, err := clientCallWithRetry(callForOutput, c.cfg)
	if err != nil {
		return nil, err
	}

	return b.abi.Unpack(method, out)
}

func (c *ChainClient) uintCall(ctx context.Context, b contractBinding, method string, args ...interface{}) (sdkmath.Int, error) {
	out, err := c.call(ctx, b, method, args...)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("%s call failed: %w", method, err)
	}
	if len(out) != 1 {
		return sdkmath.Int{}, fmt.Errorf("unexpected %s output shape: %d values", method, len(out))
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("unexpected %s output type %T", method, out[0])
	}
	return sdkmath.NewIntFromBigInt(value), nil
}

// sendTx signs and submits a state-changing call with the connected wallet
// key. Submission is never retried, a resubmit with the same nonce is not
// idempotent from the caller's point of view.
func (c *ChainClient) sendTx(ctx context.Context, b contractBinding, method string, args ...interface{}) (string, error) {
	if c.privKey == nil {
		return "", fmt.Errorf("no wallet key configured, cannot sign %s", method)
	}

	data, err := b.abi.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("failed to pack %s tx: %w", method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	nonce, err := c.eth.PendingNonceAt(ctx, c.account)
	if err != nil {
		return "", fmt.Errorf("failed to fetch nonce: %w", err)
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch gas price: %w", err)
	}
	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From: c.account,
		To:   &b.addr,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas for %s: %w", method, err)
	}

	tx := ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &b.addr,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(c.chainID), c.privKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s tx: %w", method, err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send %s tx: %w", method, err)
	}

	return signed.Hash().Hex(), nil
}

func clientCallWithRetry[T any](call retry.RetryableFuncWithData[T], cfg *config.ChainConfig) (T, error) {
	return retry.DoWithData(
		call,
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.LastErrorOnly(true),
	)
}
