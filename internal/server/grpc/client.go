package grpc

import (
	"context"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Client calls opsbot.v1.OpsBot over an existing connection using the JSON
// codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// WithToken attaches token to outgoing calls made with the returned context.
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, common.BearerScheme+token)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, grpc.ForceCodec(jsonCodec{})); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, "Ping", &Empty{})
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	return invoke[models.LoginResult](ctx, c.cc, "Login", &LoginRequest{Email: email, Password: password})
}

func (c *Client) Register(ctx context.Context, req *UserRequest) (*models.PublicUser, error) {
	return invoke[models.PublicUser](ctx, c.cc, "Register", req)
}

func (c *Client) Me(ctx context.Context) (*models.PublicUser, error) {
	return invoke[models.PublicUser](ctx, c.cc, "Me", &Empty{})
}

func (c *Client) ListUsers(ctx context.Context) (*UserList, error) {
	return invoke[UserList](ctx, c.cc, "ListUsers", &Empty{})
}

func (c *Client) GetUser(ctx context.Context, id string) (*models.PublicUser, error) {
	return invoke[models.PublicUser](ctx, c.cc, "GetUser", &IDRequest{ID: id})
}

func (c *Client) CreateUser(ctx context.Context, req *UserRequest) (*models.PublicUser, error) {
	return invoke[models.PublicUser](ctx, c.cc, "CreateUser", req)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := invoke[Empty](ctx, c.cc, "DeleteUser", &IDRequest{ID: id})
	return err
}

func (c *Client) ToggleUserStatus(ctx context.Context, id string) (*models.PublicUser, error) {
	return invoke[models.PublicUser](ctx, c.cc, "ToggleUserStatus", &IDRequest{ID: id})
}

func (c *Client) ListSessions(ctx context.Context) (*SessionList, error) {
	return invoke[SessionList](ctx, c.cc, "ListSessions", &Empty{})
}

func (c *Client) CreateSession(ctx context.Context, title string) (*models.ChatSession, error) {
	return invoke[models.ChatSession](ctx, c.cc, "CreateSession", &CreateSessionRequest{Title: title})
}

func (c *Client) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	return invoke[models.ChatSession](ctx, c.cc, "GetSession", &IDRequest{ID: id})
}

func (c *Client) PostMessage(ctx context.Context, sessionID, content string) (*models.Message, error) {
	return invoke[models.Message](ctx, c.cc, "PostMessage", &PostMessageRequest{SessionID: sessionID, Content: content})
}

func (c *Client) ListCredentials(ctx context.Context) (*CredentialList, error) {
	return invoke[CredentialList](ctx, c.cc, "ListCredentials", &Empty{})
}

func (c *Client) AddCredential(ctx context.Context, service string, details map[string]any) (*models.ServiceCredential, error) {
	return invoke[models.ServiceCredential](ctx, c.cc, "AddCredential", &AddCredentialRequest{Service: service, Details: details})
}

func (c *Client) DeleteCredential(ctx context.Context, id string) error {
	_, err := invoke[Empty](ctx, c.cc, "DeleteCredential", &IDRequest{ID: id})
	return err
}

func (c *Client) GetAnalytics(ctx context.Context) (*models.Analytics, error) {
	return invoke[models.Analytics](ctx, c.cc, "GetAnalytics", &Empty{})
}
