package client

import "context"

// TypesService fetches the code→label dictionaries.
type TypesService struct {
	client *Client
}

func (s *TypesService) OrgTypeOptions(ctx context.Context) ([]TypeOption, error) {
	return s.options(ctx, "/api/sys/types/org-type")
}

func (s *TypesService) AppTypeOptions(ctx context.Context) ([]TypeOption, error) {
	return s.options(ctx, "/api/sys/types/app-type")
}

func (s *TypesService) MenuTypeOptions(ctx context.Context) ([]TypeOption, error) {
	return s.options(ctx, "/api/sys/types/menu-type")
}

func (s *TypesService) UserStatusOptions(ctx context.Context) ([]TypeOption, error) {
	return s.options(ctx, "/api/sys/types/user-status")
}

func (s *TypesService) options(ctx context.Context, path string) ([]TypeOption, error) {
	var options []TypeOption
	if err := s.client.get(ctx, path, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// UnknownTypeText is the label shown when a stored code has no dictionary
// entry.
const UnknownTypeText = "未知"

// TypeText resolves a stored code into its display label, falling back to
// UnknownTypeText when no option matches.
func TypeText(code int, options []TypeOption) string {
	for _, opt := range options {
		if opt.Code == code {
			return opt.Value
		}
	}
	return UnknownTypeText
}
