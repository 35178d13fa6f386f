package md2posts

import (
	"fmt"

	"github.com/alnah/go-md2posts/internal/codec"
)

// PostTypeDeclaration heads the index so front-end code can type the
// per-post JSON it fetches by title.
const PostTypeDeclaration = "export type Post = {name: string, date: string, header: string, body: string}"

// RenderIndex renders the TypeScript title index for titles, in order.
func RenderIndex(titles []string) ([]byte, error) {
	if titles == nil {
		titles = []string{}
	}

	list, err := codec.MarshalJSONIndent(titles)
	if err != nil {
		return nil, fmt.Errorf("%w: title index: %v", ErrSerialization, err)
	}

	return fmt.Appendf(nil, "%s\n\n export const posts: string[] = %s;", PostTypeDeclaration, list), nil
}
