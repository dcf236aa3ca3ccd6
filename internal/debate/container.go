package debate

type DebateContainer struct {
	Service Service
	Handler *Handler
}

func NewDebateContainer(provider Provider) *DebateContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &DebateContainer{
		Service: service,
		Handler: handler,
	}
}
