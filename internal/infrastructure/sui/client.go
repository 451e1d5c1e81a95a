package sui

import (
	"context"
	"fmt"

	"github.com/fardream/go-bcs/bcs"
	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/pattonkan/sui-go/suiclient"
	"github.com/pattonkan/sui-go/suisigner"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/ports"
)

// Client implements ports.SuiClient against a Sui fullnode's JSON-RPC API,
// signing every transaction with the active account's key.
type Client struct {
	api    *suiclient.ClientImpl
	signer *suisigner.Signer
}

var _ ports.SuiClient = (*Client)(nil)

func NewClient(rpcURL string, signer *suisigner.Signer) *Client {
	return &Client{
		api:    suiclient.NewClient(rpcURL),
		signer: signer,
	}
}

// Address returns the active account's address.
func (c *Client) Address() domain.Address {
	return domain.Address(c.signer.Address.String())
}

func (c *Client) PublishPackage(
	ctx context.Context, sender domain.Address,
	modules [][]byte, deps []domain.ObjectID, gasBudget uint64,
) (*domain.ExecutionResult, error) {
	senderAddr, err := sui.AddressFromHex(string(sender))
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %s: %w", sender, err)
	}
	compiled := make([]*sui.Base64, len(modules))
	for i, m := range modules {
		data := sui.Base64(m)
		compiled[i] = &data
	}
	depIDs := make([]*sui.ObjectId, len(deps))
	for i, dep := range deps {
		if depIDs[i], err = sui.ObjectIdFromHex(string(dep)); err != nil {
			return nil, fmt.Errorf("invalid dependency ID %s: %w", dep, err)
		}
	}

	// No explicit gas object: the node picks one for the sender.
	txBytes, err := c.api.Publish(ctx, &suiclient.PublishRequest{
		Sender:          senderAddr,
		CompiledModules: compiled,
		Dependencies:    depIDs,
		GasBudget:       sui.NewBigInt(gasBudget),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build publish tx: %w", err)
	}
	return c.signAndExecute(ctx, txBytes.TxBytes)
}

func (c *Client) ExecuteMoveCall(
	ctx context.Context, req ports.MoveCallRequest,
) (*domain.ExecutionResult, error) {
	senderAddr, err := sui.AddressFromHex(string(req.Sender))
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %s: %w", req.Sender, err)
	}
	pkgID, err := sui.PackageIdFromHex(string(req.Package))
	if err != nil {
		return nil, fmt.Errorf("invalid package ID %s: %w", req.Package, err)
	}
	args := make([]any, len(req.Args))
	for i, arg := range req.Args {
		args[i] = jsonArg(arg)
	}

	txBytes, err := c.api.MoveCall(ctx, &suiclient.MoveCallRequest{
		Signer:    senderAddr,
		PackageId: pkgID,
		Module:    req.Module,
		Function:  req.Function,
		TypeArgs:  req.TypeArgs,
		Arguments: args,
		GasBudget: sui.NewBigInt(req.GasBudget),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s::%s call tx: %w", req.Module, req.Function, err)
	}
	return c.signAndExecute(ctx, txBytes.TxBytes)
}

func (c *Client) ExecuteProgrammable(
	ctx context.Context, sender domain.Address,
	ptx domain.ProgrammableTx, gas domain.GasContext, gasBudget uint64,
) (*domain.ExecutionResult, error) {
	senderAddr, err := sui.AddressFromHex(string(sender))
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %s: %w", sender, err)
	}

	builder := suiptb.NewTransactionDataTransactionBuilder()
	args := make([]suiptb.Argument, len(ptx.Inputs))
	for i, input := range ptx.Inputs {
		if args[i], err = addInput(builder, input); err != nil {
			return nil, fmt.Errorf("failed to register input %d: %w", i, err)
		}
	}
	for _, call := range ptx.Calls {
		if err := addMoveCall(builder, call, args); err != nil {
			return nil, fmt.Errorf(
				"failed to append %s::%s call: %w", call.Module, call.Function, err,
			)
		}
	}

	gasRef, err := toSuiObjectRef(gas.Coin.Ref)
	if err != nil {
		return nil, fmt.Errorf("invalid gas coin reference: %w", err)
	}
	txData := suiptb.NewTransactionData(
		senderAddr, builder.Finish(), []*sui.ObjectRef{gasRef}, gasBudget, gas.GasPrice,
	)
	txBytes, err := bcs.Marshal(txData)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize programmable tx: %w", err)
	}
	return c.signAndExecute(ctx, txBytes)
}

func (c *Client) GetObject(
	ctx context.Context, id domain.ObjectID,
) (*domain.ObjectData, error) {
	objID, err := sui.ObjectIdFromHex(string(id))
	if err != nil {
		return nil, fmt.Errorf("invalid object ID %s: %w", id, err)
	}
	resp, err := c.api.GetObject(ctx, &suiclient.GetObjectRequest{
		ObjectId: objID,
		Options:  &suiclient.SuiObjectDataOptions{ShowType: true, ShowOwner: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", id, err)
	}
	if resp.Error != nil || resp.Data == nil {
		return nil, objectReadError(id, resp)
	}
	data := fromObjectData(resp.Data)
	return &data, nil
}

func (c *Client) MultiGetObjects(
	ctx context.Context, ids []domain.ObjectID,
) ([]domain.ObjectData, error) {
	objIDs := make([]*sui.ObjectId, len(ids))
	for i, id := range ids {
		var err error
		if objIDs[i], err = sui.ObjectIdFromHex(string(id)); err != nil {
			return nil, fmt.Errorf("invalid object ID %s: %w", id, err)
		}
	}
	resps, err := c.api.MultiGetObjects(ctx, &suiclient.MultiGetObjectsRequest{
		ObjectIds: objIDs,
		Options:   &suiclient.SuiObjectDataOptions{ShowType: true, ShowOwner: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %d objects: %w", len(ids), err)
	}
	out := make([]domain.ObjectData, 0, len(resps))
	for i := range resps {
		if resps[i].Error != nil || resps[i].Data == nil {
			return nil, objectReadError(ids[i], &resps[i])
		}
		out = append(out, fromObjectData(resps[i].Data))
	}
	return out, nil
}

func (c *Client) GetCoins(
	ctx context.Context, owner domain.Address,
) ([]domain.Coin, error) {
	ownerAddr, err := sui.AddressFromHex(string(owner))
	if err != nil {
		return nil, fmt.Errorf("invalid owner address %s: %w", owner, err)
	}
	page, err := c.api.GetCoins(ctx, &suiclient.GetCoinsRequest{Owner: ownerAddr})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coins of %s: %w", owner, err)
	}
	coins := make([]domain.Coin, len(page.Data))
	for i, coin := range page.Data {
		coins[i] = domain.Coin{
			Ref: domain.ObjectRef{
				ID:      domain.ObjectID(coin.CoinObjectId.String()),
				Version: coin.Version.Uint64(),
				Digest:  coin.Digest.String(),
			},
			Balance: coin.Balance.Uint64(),
		}
	}
	return coins, nil
}

func (c *Client) GetReferenceGasPrice(ctx context.Context) (uint64, error) {
	price, err := c.api.GetReferenceGasPrice(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch reference gas price: %w", err)
	}
	return price.Uint64(), nil
}

// signAndExecute signs the given transaction bytes with the active account's
// key, submits the transaction and waits for local execution.
func (c *Client) signAndExecute(
	ctx context.Context, txBytes sui.Base64,
) (*domain.ExecutionResult, error) {
	signature, err := c.signer.SignDigest(txBytes, suisigner.DefaultIntent())
	if err != nil {
		return nil, fmt.Errorf("failed to sign tx: %w", err)
	}
	resp, err := c.api.ExecuteTransactionBlock(ctx, &suiclient.ExecuteTransactionBlockRequest{
		TxDataBytes: txBytes,
		Signatures:  []*suisigner.Signature{&signature},
		Options: &suiclient.SuiTransactionBlockResponseOptions{
			ShowEffects: true,
		},
		RequestType: suiclient.TxnRequestTypeWaitForLocalExecution,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute tx: %w", err)
	}
	return fromTxResponse(resp), nil
}

func addInput(
	builder *suiptb.ProgrammableTransactionBuilder, input domain.CallInput,
) (suiptb.Argument, error) {
	if input.Object != nil {
		arg, err := toSuiObjectArg(*input.Object)
		if err != nil {
			return suiptb.Argument{}, err
		}
		return builder.Obj(arg)
	}
	return builder.Pure(input.Pure)
}

func addMoveCall(
	builder *suiptb.ProgrammableTransactionBuilder,
	call domain.MoveCall, inputs []suiptb.Argument,
) error {
	pkgID, err := sui.PackageIdFromHex(string(call.Package))
	if err != nil {
		return fmt.Errorf("invalid package ID %s: %w", call.Package, err)
	}
	typeArgs := make([]sui.TypeTag, len(call.TypeArgs))
	for i, raw := range call.TypeArgs {
		tag, err := sui.NewTypeTag(raw)
		if err != nil {
			return fmt.Errorf("invalid type tag %q: %w", raw, err)
		}
		typeArgs[i] = *tag
	}
	callArgs := make([]suiptb.Argument, len(call.Args))
	for i, arg := range call.Args {
		callArgs[i] = inputs[arg.Input]
	}
	builder.Command(suiptb.Command{
		MoveCall: &suiptb.ProgrammableMoveCall{
			Package:       pkgID,
			Module:        call.Module,
			Function:      call.Function,
			TypeArguments: typeArgs,
			Arguments:     callArgs,
		},
	})
	return nil
}

// objectReadError turns a failed object read into an error carrying the RPC's
// reason, which distinguishes a deleted object from one that never existed.
func objectReadError(id domain.ObjectID, resp *suiclient.SuiObjectResponse) error {
	if resp.Error == nil {
		return fmt.Errorf("object %s not found", id)
	}
	detail := resp.Error.Data
	switch {
	case detail.NotExists != nil:
		return fmt.Errorf("object %s does not exist", id)
	case detail.Deleted != nil:
		return fmt.Errorf(
			"object %s was deleted at version %d", id, detail.Deleted.Version,
		)
	default:
		return fmt.Errorf("object %s not found", id)
	}
}

// jsonArg converts a pure value to its JSON-RPC wire form. Unsigned integers
// are passed as strings, as required by the unsafe transaction builder API.
func jsonArg(v any) any {
	switch val := v.(type) {
	case domain.Address:
		return val.String()
	case uint64:
		return fmt.Sprintf("%d", val)
	case uint8:
		return fmt.Sprintf("%d", val)
	default:
		return val
	}
}
