package v1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	GroupVersion  = "debviz.djcass44.github.com/v1"
	KindVisualize = "Visualize"
)

type VisualizeSpec struct {
	Package    string `json:"package,omitempty"`
	Version    string `json:"version,omitempty"`
	Repository string `json:"repository,omitempty"`
	// TestMode forces the repository to be read
	// from the local filesystem.
	TestMode  bool     `json:"testMode,omitempty"`
	Output    string   `json:"output,omitempty"`
	ASCIITree bool     `json:"asciiTree,omitempty"`
	MaxDepth  int      `json:"maxDepth,omitempty"`
	Fields    []string `json:"fields,omitempty"`
}

type Visualize struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec VisualizeSpec `json:"spec"`
}
