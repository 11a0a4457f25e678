package web

import _ "embed"

// CadastroPage is the static intake form served at /cadastro.
//
//go:embed cadastro.html
var CadastroPage []byte
