package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stakeapi/stakeapi-go/pkg/stakeapi"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Credential helpers",
}

// Token acquisition stays manual: log in with a browser, copy a request as
// curl from the network inspector, paste it here.
var authImportCurlCmd = &cobra.Command{
	Use:   "import-curl",
	Short: "Extract credentials from a browser-copied curl command on stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		curl := string(raw)

		token := stakeapi.TokenFromCurl(curl)
		cookie := stakeapi.SessionCookieFromCurl(curl)
		if token == "" && cookie == "" {
			return fmt.Errorf("no x-access-token header or session cookie found")
		}

		var lines []string
		if token != "" {
			if !stakeapi.ValidAccessToken(token) {
				log.Warn("extracted token does not match the expected format")
			}
			lines = append(lines, "access_token: "+token)
		}
		if cookie != "" {
			lines = append(lines, "session_cookie: "+cookie)
		}
		fmt.Fprintln(os.Stdout, strings.Join(lines, "\n"))
		return nil
	},
}

func init() {
	authCmd.AddCommand(authImportCurlCmd)
	rootCmd.AddCommand(authCmd)
}
