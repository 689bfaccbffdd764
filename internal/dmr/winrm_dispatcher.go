package dmr

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/trsv-dev/simple-topology-console/internal/remote"
)

// WinRMDispatcher Диспетчер для Windows-хостов, где management-эндпоинт слушает только
// локальный интерфейс: запрос выполняется на самом хосте через WinRM.
type WinRMDispatcher struct {
	dispatcher
	factory       remote.ClientFactory
	host          string
	winRMUser     string
	winRMPassword string
	url           string
	user          string
	password      string
}

// NewWinRMDispatcher Конструктор WinRM диспетчера. url - адрес management-эндпоинта
// с точки зрения удалённого хоста.
func NewWinRMDispatcher(factory remote.ClientFactory, host, winRMUser, winRMPassword, url, user, password string) *WinRMDispatcher {
	d := &WinRMDispatcher{
		factory:       factory,
		host:          host,
		winRMUser:     winRMUser,
		winRMPassword: winRMPassword,
		url:           url,
		user:          user,
		password:      password,
	}
	d.dispatcher = dispatcher{endpoint: "winrm://" + host, post: d.invoke}

	return d
}

func (d *WinRMDispatcher) invoke(ctx context.Context, payload []byte) ([]byte, error) {
	client, err := d.factory.CreateClient(d.host, d.winRMUser, d.winRMPassword)
	if err != nil {
		return nil, err
	}

	out, err := client.RunCommand(ctx, d.script(payload))
	if err != nil {
		return nil, err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return nil, fmt.Errorf("пустой ответ от %s", d.host)
	}

	return []byte(out), nil
}

// Скрипт PowerShell, отправляющий payload на management-эндпоинт. Ответы с кодом ошибки
// тоже содержат JSON с failure-description, поэтому тело читается и из исключения.
func (d *WinRMDispatcher) script(payload []byte) string {
	var sb strings.Builder

	sb.WriteString("$ProgressPreference = 'SilentlyContinue'\n")
	fmt.Fprintf(&sb, "$body = [System.Text.Encoding]::UTF8.GetString([System.Convert]::FromBase64String('%s'))\n",
		base64.StdEncoding.EncodeToString(payload))
	fmt.Fprintf(&sb, "$params = @{ Uri = %s; Method = 'Post'; ContentType = 'application/json'; Body = $body; UseBasicParsing = $true }\n",
		psQuote(d.url))

	if d.user != "" {
		fmt.Fprintf(&sb, "$pass = ConvertTo-SecureString %s -AsPlainText -Force\n", psQuote(d.password))
		fmt.Fprintf(&sb, "$params.Credential = New-Object System.Management.Automation.PSCredential(%s, $pass)\n", psQuote(d.user))
	}

	sb.WriteString("try { (Invoke-WebRequest @params).Content } catch { ")
	sb.WriteString("$r = $_.Exception.Response; if ($r -eq $null) { throw }; ")
	sb.WriteString("(New-Object System.IO.StreamReader($r.GetResponseStream())).ReadToEnd() }\n")

	return sb.String()
}

// psQuote Строка в одинарных кавычках PowerShell.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
