package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
	"github.com/aussiebroadwan/cashbook/pkg/jwtx"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"

	_ "github.com/aussiebroadwan/cashbook/api/membership" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	RosterService     *service.RosterService
	MembershipService *service.MembershipService
	InviteService     *service.InviteService
	UserService       *service.UserService
	BusinessService   *service.BusinessService
	AccessService     *service.AccessService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	cors httpx.CORSConfig,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerBusinesses()
	r.registerRoster()
	r.registerMembers()
	r.registerInvites()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Cashbook Membership Service API
//	@version		0.1.0
//	@description	Business rosters, derived roles and the invitation lifecycle for shared cashbooks.
//	@description
//	@description				Every /v1 route needs an access token issued by the auth service.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/cashbook
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with token verification, the scope check, profile sync
// and the per-user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if len(scopes) > 0 {
		mws = append(mws, httpx.RequireAnyScope(scopes...))
	}
	mws = append(mws,
		ValidPathIDsMiddleware(),
		httpx.RateLimitByUserAndPath(limit),
		SyncUserMiddleware(r.UserService),
	)
	return httpx.Chain(h, mws...)
}

func (r *Router) registerBusinesses() {
	h := &BusinessHandler{
		Businesses: r.BusinessService,
		Access:     r.AccessService,
	}

	r.Mux.Handle("POST /v1/businesses",
		r.secured(h.HandleCreateBusiness, httpx.WriteLimit, httpx.ScopeCashbookWrite))
	r.Mux.Handle("POST /v1/businesses/{businessID}/cashbooks",
		r.secured(h.HandleCreateCashbook, httpx.WriteLimit, httpx.ScopeCashbookWrite))
}

func (r *Router) registerRoster() {
	h := &RosterHandler{
		Rosters: r.RosterService,
		Access:  r.AccessService,
	}

	r.Mux.Handle("GET /v1/businesses/{businessID}/roster",
		r.secured(h.HandleGetRoster, httpx.ReadLimit, httpx.ScopeCashbookRead))
	r.Mux.Handle("GET /v1/businesses/{businessID}/available",
		r.secured(h.HandleAvailableForBusiness, httpx.ReadLimit, httpx.ScopeCashbookRead))
	r.Mux.Handle("GET /v1/businesses/{businessID}/cashbooks/{cashbookID}/available",
		r.secured(h.HandleAvailableForCashbook, httpx.ReadLimit, httpx.ScopeCashbookRead))
}

func (r *Router) registerMembers() {
	h := &MemberHandler{
		Members:    r.MembershipService,
		Businesses: r.BusinessService,
		Access:     r.AccessService,
	}

	r.Mux.Handle("POST /v1/businesses/{businessID}/members",
		r.secured(h.HandleAddBusinessMember, httpx.WriteLimit, httpx.ScopeCashbookWrite))
	r.Mux.Handle("DELETE /v1/businesses/{businessID}/members/{userID}",
		r.secured(h.HandleRemoveBusinessMember, httpx.WriteLimit, httpx.ScopeCashbookWrite))
	r.Mux.Handle("POST /v1/businesses/{businessID}/cashbooks/{cashbookID}/members",
		r.secured(h.HandleAddCashbookMember, httpx.WriteLimit, httpx.ScopeCashbookWrite))
	r.Mux.Handle("DELETE /v1/businesses/{businessID}/cashbooks/{cashbookID}/members/{userID}",
		r.secured(h.HandleRemoveCashbookMember, httpx.WriteLimit, httpx.ScopeCashbookWrite))
}

func (r *Router) registerInvites() {
	h := &InviteHandler{
		Invites: r.InviteService,
		Access:  r.AccessService,
	}

	// Create and resend send email or SMS.
	r.Mux.Handle("POST /v1/businesses/{businessID}/invites",
		r.secured(h.HandleCreate, httpx.InviteLimit, httpx.ScopeCashbookWrite))
	r.Mux.Handle("GET /v1/businesses/{businessID}/invites",
		r.secured(h.HandleList, httpx.ReadLimit, httpx.ScopeCashbookRead))
	r.Mux.Handle("POST /v1/invites/{inviteID}/resend",
		r.secured(h.HandleResend, httpx.InviteLimit, httpx.ScopeCashbookWrite))
	r.Mux.Handle("DELETE /v1/invites/{inviteID}",
		r.secured(h.HandleRevoke, httpx.WriteLimit, httpx.ScopeCashbookWrite))

	// The invitee may not hold cashbook scopes yet; any signed-in user can
	// look up and accept.
	r.Mux.Handle("GET /v1/invites/lookup",
		r.secured(h.HandleLookup, httpx.InviteLimit))
	r.Mux.Handle("POST /v1/invites/accept",
		r.secured(h.HandleAccept, httpx.InviteLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
