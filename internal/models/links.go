package models

type LinkItem struct {
	Name  string `json:"name" yaml:"name"`
	URL   string `json:"url" yaml:"url"`
	Group string `json:"group,omitempty" yaml:"group"`
	Icon  string `json:"icon,omitempty" yaml:"icon"`
}

type LinksResponse struct {
	Links []LinkItem `json:"links"`
}
