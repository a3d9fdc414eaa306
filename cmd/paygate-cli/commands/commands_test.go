package commands

import (
	"context"
	"io/ioutil"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coschain/cobra"
	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/app"
	"github.com/slackernews/paygate/iservices/mock_iservices"
	"github.com/slackernews/paygate/myhttp"
	"github.com/slackernews/paygate/prototype"
	"github.com/slackernews/paygate/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedReader string

func (r fixedReader) ReadPassword(fd int) ([]byte, error) {
	return []byte(r), nil
}

// upvotePayment builds a fee payer signed upvote of user paying author.
func upvotePayment(t *testing.T, user, author solana.PublicKey) *prototype.PartialTransaction {
	platform := solana.NewWallet()
	mint := solana.NewWallet().PublicKey()
	ata := func(owner solana.PublicKey) solana.PublicKey {
		addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
		require.NoError(t, err)
		return addr
	}
	ixs := []prototype.Instruction{
		&prototype.CreateAccount{Payer: platform.PublicKey(), Address: ata(author), Owner: author, Mint: mint},
		&prototype.TransferChecked{Source: ata(user), Destination: ata(author), Owner: user, Mint: mint, Amount: 800, Decimals: 6},
		&prototype.TransferChecked{Source: ata(user), Destination: ata(platform.PublicKey()), Owner: user, Mint: mint, Amount: 200, Decimals: 6},
	}
	cp := &prototype.Checkpoint{Blockhash: solana.Hash(solana.NewWallet().PublicKey()), LastValidBlockHeight: 10}
	ptx, err := app.Assemble(ixs, platform.PublicKey(), cp)
	require.NoError(t, err)
	signer, err := wallet.NewPlatformSigner(platform.PrivateKey)
	require.NoError(t, err)
	require.NoError(t, signer.SignAsFeePayer(ptx.Tx))
	ptx.Type = prototype.InteractionUpvote
	ptx.Quote = prototype.Quote{Type: prototype.InteractionUpvote, Total: 1000, AuthorShare: 800, PlatformShare: 200}
	return ptx
}

func TestDescribe(t *testing.T) {
	a := assert.New(t)
	user := solana.NewWallet().PublicKey()
	author := solana.NewWallet().PublicKey()
	ptx := upvotePayment(t, user, author)

	lines, err := describe(ptx.Tx)
	require.NoError(t, err)
	all := strings.Join(lines, "\n")
	a.Contains(lines[0], ptx.FeePayer.String())
	a.Contains(all, "create token account")
	a.Contains(all, "for "+author.String())
	a.Contains(all, "transfer 0.000800")
	a.Contains(all, "transfer 0.000200")
	a.Equal("missing signature: "+user.String(), lines[len(lines)-1])

	_, err = describe(&solana.Transaction{})
	a.Error(err)
}

func newTestCommand(t *testing.T, build func() *cobra.Command, secret string) (*cobra.Command, *mock_iservices.MockIPayGate) {
	gate := mock_iservices.NewMockIPayGate(gomock.NewController(t))
	log := logrus.New()
	log.Out = ioutil.Discard
	srv := httptest.NewServer(myhttp.NewRouter(gate, nil, log))
	t.Cleanup(srv.Close)

	cmd := build()
	cmd.SetContext(ClientKey, myhttp.NewClient(srv.URL))
	cmd.SetContext(PReaderKey, fixedReader(secret))
	return cmd, gate
}

func TestPayCommand(t *testing.T) {
	a := assert.New(t)
	user := solana.NewWallet()
	author := solana.NewWallet().PublicKey()
	ptx := upvotePayment(t, user.PublicKey(), author)

	cmd, gate := newTestCommand(t, PayCmd, wallet.EncodeSecret(user.PrivateKey))
	gate.EXPECT().BuildInteractionTransaction(gomock.Any(), prototype.InteractionUpvote, user.PublicKey(), author).Return(ptx, nil)
	gate.EXPECT().SubmitEncoded(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, encoded string) (*prototype.SubmissionResult, error) {
			tx, err := prototype.DecodeTransaction(encoded)
			require.NoError(t, err)
			a.Empty(prototype.MissingSigners(tx))
			a.NoError(tx.VerifySignatures())
			return &prototype.SubmissionResult{Signature: tx.Signatures[0], Status: prototype.StatusConfirmed}, nil
		})

	cmd.SetArgs([]string{"upvote", user.PublicKey().String(), author.String()})
	_, err := cmd.ExecuteC()
	a.NoError(err)
}

func TestPayRefusesForeignKey(t *testing.T) {
	a := assert.New(t)
	user := solana.NewWallet().PublicKey()

	// no gateway call is expected
	cmd, _ := newTestCommand(t, PayCmd, wallet.EncodeSecret(solana.NewWallet().PrivateKey))
	cmd.SetArgs([]string{"post", user.String()})
	_, err := cmd.ExecuteC()
	a.NoError(err)
}

func TestBuildCommand(t *testing.T) {
	a := assert.New(t)
	user := solana.NewWallet().PublicKey()
	author := solana.NewWallet().PublicKey()

	cmd, gate := newTestCommand(t, CommentCmd, "")
	gate.EXPECT().BuildInteractionTransaction(gomock.Any(), prototype.InteractionComment, user, author).
		Return(upvotePayment(t, user, author), nil)
	cmd.SetArgs([]string{user.String(), author.String()})
	_, err := cmd.ExecuteC()
	a.NoError(err)
}

func TestReadKeyAcceptsMnemonic(t *testing.T) {
	a := assert.New(t)
	mnemonic, err := wallet.GenerateMnemonic()
	require.NoError(t, err)
	want, err := wallet.KeyFromMnemonic(mnemonic, "")
	require.NoError(t, err)

	cmd := CosignCmd()
	cmd.SetContext(PReaderKey, fixedReader(mnemonic+"\n"))
	key, err := readKey(cmd, "")
	a.NoError(err)
	a.Equal(want, key)

	cmd.SetContext(PReaderKey, fixedReader(wallet.EncodeSecret(want)))
	key, err = readKey(cmd, "")
	a.NoError(err)
	a.Equal(want.PublicKey(), key.PublicKey())
}
