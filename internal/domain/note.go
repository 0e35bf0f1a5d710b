package domain

type Note struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
}

type NotePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Apply merges the patch into n and stamps UpdatedAt.
func (p NotePatch) Apply(n *Note, now string) {
	n.Title = ValueOr(n.Title, p.Title)
	n.Content = ValueOr(n.Content, p.Content)
	n.UpdatedAt = now
}
